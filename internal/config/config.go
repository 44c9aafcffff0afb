package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mapping source names accepted in MAPPING_SOURCE.
const (
	SourceFile         = "file"
	SourceFileEnv      = "file-env"
	SourceMultiEnvFile = "multi-env-file"
	SourceEnv          = "env"
)

type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:"0.0.0.0:3000"`
	DataDir         string        `env:"DATA_DIR" envDefault:"."`
	MappingSource   string        `env:"MAPPING_SOURCE" envDefault:"file"`
	ConfigPath      string        `env:"CONFIG_PATH" envDefault:"config.json"`
	MappingsPath    string        `env:"APP_MAPPINGS_PATH" envDefault:"app_mappings.json"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.MappingSource {
	case SourceFile, SourceFileEnv, SourceMultiEnvFile, SourceEnv:
		return nil
	}
	return fmt.Errorf("unknown mapping source: %s", c.MappingSource)
}

func (c *Config) DBPath() string {
	return c.DataDir + "/hits.db"
}
