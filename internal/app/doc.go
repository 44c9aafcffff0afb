// Package app provides application initialization and lifecycle management.
//
// The App type wires all dependencies together and manages:
// - Service settings loading
// - Hit database initialization
// - Mapping source selection
// - HTTP server lifecycle
// - Graceful shutdown
package app
