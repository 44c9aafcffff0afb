package service

import (
	"fmt"
	"strings"

	"github.com/amaumene/appredirect/internal/domain"
)

// ParseIdentifier splits a raw identifier into an environment code and an
// application name. Identifiers shorter than 4 characters, or whose first
// 3 characters are not a recognized code, are treated as plain application
// names in the PRD environment.
//
// The prefix check always runs first, so an application literally named
// with a recognized prefix (e.g. "TSTadmin") cannot be addressed without
// the prefix being stripped. This matches the historical behavior.
func ParseIdentifier(raw string) (environment, appName string) {
	if len(raw) < 4 {
		return domain.EnvPRD, raw
	}

	candidate := strings.ToUpper(raw[:3])
	if domain.IsSupportedEnvironment(candidate) {
		return candidate, raw[3:]
	}
	return domain.EnvPRD, raw
}

// Resolve looks up a raw identifier in the mapping configuration and
// returns the resolved GUID pair. Lookup is by exact, case-sensitive
// application name; the first matching entry wins. Failures wrap
// domain.ErrAppNotFound or domain.ErrEnvironmentNotFound.
func Resolve(rawIdentifier string, cfg *domain.Configuration) (*domain.ResolvedMapping, error) {
	environment, appName := ParseIdentifier(rawIdentifier)

	app := findApp(cfg.Apps, appName)
	if app == nil {
		return nil, fmt.Errorf("app %q: %w", appName, domain.ErrAppNotFound)
	}

	appGUID, err := resolveAppGUID(app, environment)
	if err != nil {
		return nil, err
	}

	environmentGUID, err := resolveEnvironmentGUID(cfg, environment)
	if err != nil {
		return nil, err
	}

	return &domain.ResolvedMapping{
		AppName:         appName,
		Environment:     environment,
		EnvironmentGUID: environmentGUID,
		AppGUID:         appGUID,
	}, nil
}

func findApp(apps []domain.AppMapping, appName string) *domain.AppMapping {
	for i := range apps {
		if apps[i].AppName == appName {
			return &apps[i]
		}
	}
	return nil
}

func resolveAppGUID(app *domain.AppMapping, environment string) (string, error) {
	// A present-but-empty table is not the same as no table: once an
	// entry declares per-environment GUIDs, every lookup must go
	// through it.
	if app.Environments == nil {
		return app.AppGUID, nil
	}

	guid, ok := app.Environments[environment]
	if !ok {
		return "", fmt.Errorf("environment %q for app %q: %w", environment, app.AppName, domain.ErrEnvironmentNotFound)
	}
	return guid, nil
}

func resolveEnvironmentGUID(cfg *domain.Configuration, environment string) (string, error) {
	if cfg.EnvironmentGUIDs == nil {
		return cfg.EnvironmentGUID, nil
	}

	guid, ok := cfg.EnvironmentGUIDs[environment]
	if !ok {
		return "", fmt.Errorf("environment %q: %w", environment, domain.ErrEnvironmentNotFound)
	}
	return guid, nil
}
