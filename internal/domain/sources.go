package domain

import (
	"context"
	"time"
)

// MappingSource produces a validated Configuration from its backing
// source. Implementations fail with *ConfigError when the source is
// missing or malformed.
type MappingSource interface {
	Load() (*Configuration, error)
}

// HitSummary aggregates the recorded redirects for one app/environment pair.
type HitSummary struct {
	AppName     string
	Environment string
	Count       int64
	LastSeen    time.Time
}

// HitRepository records successful redirects for diagnostics.
type HitRepository interface {
	Record(ctx context.Context, appName, environment string) error
	Summaries(ctx context.Context) ([]HitSummary, error)
}
