// Package handler implements HTTP request handlers.
//
// This package provides HTTP endpoints for:
// - /redirect: resolve an app identifier and issue a 302 to its play URL
// - /stats: list recorded redirect counters
// - /health: health check endpoint
//
// Every redirect request is tagged with an opaque request id used only
// for log correlation, and total handling latency is logged regardless
// of outcome.
package handler
