package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.ServerAddr != "0.0.0.0:3000" {
					t.Errorf("ServerAddr = %v, want 0.0.0.0:3000", cfg.ServerAddr)
				}
				if cfg.MappingSource != SourceFile {
					t.Errorf("MappingSource = %v, want %v", cfg.MappingSource, SourceFile)
				}
				if cfg.ReadTimeout != 30*time.Second {
					t.Errorf("ReadTimeout = %v, want 30s", cfg.ReadTimeout)
				}
			},
		},
		{
			name: "custom mapping source",
			env: map[string]string{
				"MAPPING_SOURCE":    SourceEnv,
				"SERVER_ADDR":       "127.0.0.1:8080",
				"APP_MAPPINGS_PATH": "/etc/appredirect/app_mappings.json",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.MappingSource != SourceEnv {
					t.Errorf("MappingSource = %v, want %v", cfg.MappingSource, SourceEnv)
				}
				if cfg.ServerAddr != "127.0.0.1:8080" {
					t.Errorf("ServerAddr = %v, want 127.0.0.1:8080", cfg.ServerAddr)
				}
				if cfg.MappingsPath != "/etc/appredirect/app_mappings.json" {
					t.Errorf("MappingsPath = %v", cfg.MappingsPath)
				}
			},
		},
		{
			name: "unknown mapping source",
			env: map[string]string{
				"MAPPING_SOURCE": "consul",
			},
			wantErr: true,
		},
		{
			name: "invalid duration",
			env: map[string]string{
				"READ_TIMEOUT": "soon",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && err == nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_DBPath(t *testing.T) {
	cfg := &Config{DataDir: "/var/lib/appredirect"}
	if got := cfg.DBPath(); got != "/var/lib/appredirect/hits.db" {
		t.Errorf("DBPath() = %v, want /var/lib/appredirect/hits.db", got)
	}
}
