package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/amaumene/appredirect/internal/config"
	"github.com/amaumene/appredirect/internal/domain"
)

// New builds the mapping source selected by the service settings and
// wraps it in the process-wide memoizing cache.
func New(cfg *config.Config) (domain.MappingSource, error) {
	var src domain.MappingSource
	switch cfg.MappingSource {
	case config.SourceFile:
		src = &FileSource{Path: cfg.ConfigPath}
	case config.SourceFileEnv:
		src = &FileEnvSource{MappingsPath: cfg.MappingsPath}
	case config.SourceMultiEnvFile:
		src = &MultiEnvFileSource{Path: cfg.ConfigPath}
	case config.SourceEnv:
		src = &EnvSource{}
	default:
		return nil, fmt.Errorf("unknown mapping source: %s", cfg.MappingSource)
	}
	return NewCached(src), nil
}

// isGovFromEnv mirrors the source behavior: anything but a
// case-insensitive "true" is false.
func isGovFromEnv() bool {
	return strings.EqualFold(os.Getenv("IS_GOV"), "true")
}

func readSourceFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, domain.NewConfigError(fmt.Sprintf("configuration file not found at %s", path), nil)
	}
	if err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("reading configuration file %s", path), err)
	}
	return data, nil
}
