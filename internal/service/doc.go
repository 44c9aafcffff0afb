// Package service contains the redirect resolution logic.
//
// It covers the three steps between a raw identifier and a redirect
// target:
//   - ParseIdentifier: split an optional environment prefix off the
//     application name
//   - Resolve: look the application up in the mapping configuration
//   - BuildRedirectURL: construct the destination play URL
//
// All functions are pure; the only I/O in the request path lives in the
// source and handler packages.
package service
