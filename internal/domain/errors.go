package domain

import "errors"

var (
	ErrAppNotFound         = errors.New("app not found")
	ErrEnvironmentNotFound = errors.New("environment not found")
)

// IsNotFound reports whether err is one of the not-found sentinels that
// translate to a 404 at the handler boundary.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAppNotFound) || errors.Is(err, ErrEnvironmentNotFound)
}

// ConfigError reports a missing or malformed configuration source. It is
// fatal for the request that triggered the load but not for the process;
// the next request retries the load.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError with an optional underlying cause.
func NewConfigError(reason string, err error) *ConfigError {
	return &ConfigError{Reason: reason, Err: err}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
