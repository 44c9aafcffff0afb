// Package domain defines the core entities and interfaces for appredirect.
//
// This package contains the mapping configuration model, the per-request
// resolved mapping, the error values shared across packages, and the
// capability interfaces for configuration sources and hit recording.
package domain
