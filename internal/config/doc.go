// Package config handles service settings loading and validation.
//
// Settings are parsed from environment variables (a .env file is picked up
// when present) with sensible defaults. The mapping source selection is
// validated at startup to fail fast if misconfigured; the mapping table
// itself is loaded lazily by the source package.
package config
