// Package source loads the mapping configuration that drives redirects.
//
// Four source shapes are supported, selectable at startup:
//   - file: a single JSON document with environment_guid, is_gov and
//     app_mappings keys (the canonical shape)
//   - file-env: a bare app mappings JSON file plus ENVIRONMENT_GUID and
//     IS_GOV environment variables
//   - multi-env-file: a JSON document with per-environment GUID tables
//     (EnvironmentGUIDs, Apps) plus the IS_GOV environment variable
//   - env: everything from environment variables, with the mapping list
//     inlined in APP_MAPPINGS
//
// Every shape normalizes to domain.Configuration. The Cached wrapper
// guarantees at most one successful load per process; a failed load is
// not cached so the next request retries it.
package source
