// Package storage provides a BoltDB-based implementation of the hit
// repository.
//
// Successful redirects are counted per application and environment using
// BoltHold for persistence. All operations support context cancellation
// and proper error wrapping.
package storage
