package source

import (
	"path/filepath"
	"testing"

	"github.com/amaumene/appredirect/internal/domain"
)

func TestMultiEnvFileSource_Load(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		t.Setenv("IS_GOV", "true")

		content := `{
			"EnvironmentGUIDs": {"PRD": "prd-env", "TST": "tst-env", "DEV": "dev-env"},
			"Apps": {
				"eprf": {"PRD": "eprf-prd"},
				"cip": {"PRD": "cip-prd", "TST": "cip-tst"}
			}
		}`
		src := &MultiEnvFileSource{Path: writeTestFile(t, "config.json", content)}
		cfg, err := src.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
		if !cfg.IsGov {
			t.Error("IsGov = false, want true")
		}
		if cfg.EnvironmentGUIDs["TST"] != "tst-env" {
			t.Errorf("EnvironmentGUIDs[TST] = %v, want tst-env", cfg.EnvironmentGUIDs["TST"])
		}
		if len(cfg.Apps) != 2 {
			t.Fatalf("len(Apps) = %d, want 2", len(cfg.Apps))
		}
		// Flattening sorts names so table order is deterministic.
		if cfg.Apps[0].AppName != "cip" || cfg.Apps[1].AppName != "eprf" {
			t.Errorf("Apps order = [%s, %s], want [cip, eprf]", cfg.Apps[0].AppName, cfg.Apps[1].AppName)
		}
		if cfg.Apps[0].Environments["TST"] != "cip-tst" {
			t.Errorf("cip TST guid = %v, want cip-tst", cfg.Apps[0].Environments["TST"])
		}
	})

	t.Run("missing environment guids key", func(t *testing.T) {
		src := &MultiEnvFileSource{Path: writeTestFile(t, "config.json", `{"Apps": {}}`)}
		if _, err := src.Load(); !domain.IsConfigError(err) {
			t.Fatalf("Load() error = %v, want ConfigError", err)
		}
	})

	t.Run("missing apps key", func(t *testing.T) {
		src := &MultiEnvFileSource{Path: writeTestFile(t, "config.json", `{"EnvironmentGUIDs": {}}`)}
		if _, err := src.Load(); !domain.IsConfigError(err) {
			t.Fatalf("Load() error = %v, want ConfigError", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		src := &MultiEnvFileSource{Path: filepath.Join(t.TempDir(), "nope.json")}
		if _, err := src.Load(); !domain.IsConfigError(err) {
			t.Fatalf("Load() error = %v, want ConfigError", err)
		}
	})

	t.Run("incomplete environment guid table is not fatal", func(t *testing.T) {
		content := `{"EnvironmentGUIDs": {"PRD": "prd-env"}, "Apps": {}}`
		src := &MultiEnvFileSource{Path: writeTestFile(t, "config.json", content)}
		if _, err := src.Load(); err != nil {
			t.Fatalf("Load() unexpected error = %v", err)
		}
	})
}
