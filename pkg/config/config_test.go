package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"DEVLINGO_OUTPUT_DIR", "DEVLINGO_FILE_PATTERN", "DEVLINGO_CATALOG", "DEVLINGO_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != filepath.Join("data", "phrases") {
		t.Errorf("unexpected OutputDir %q", cfg.OutputDir)
	}
	if cfg.FilePattern != "%s.json" {
		t.Errorf("unexpected FilePattern %q", cfg.FilePattern)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("catalog should be disabled by default, got %q", cfg.Catalog.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "conf", "devlingo.yaml")

	cfg := DefaultConfig()
	cfg.OutputDir = "out"
	cfg.FilePattern = "phrases_%s.json"
	cfg.Catalog.Path = "catalog.db"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "devlingo.yaml")
	if err := os.WriteFile(path, []byte("output_dir: build/phrases\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "build/phrases" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.FilePattern != "%s.json" || cfg.Logging.Level != "info" {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "devlingo.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVLINGO_OUTPUT_DIR", "/tmp/devlingo")
	t.Setenv("DEVLINGO_CATALOG", "phrases.db")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.OutputDir != "/tmp/devlingo" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Catalog.Path != "phrases.db" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty output", func(c *Config) { c.OutputDir = " " }},
		{"pattern without verb", func(c *Config) { c.FilePattern = "phrases.json" }},
		{"pattern with two verbs", func(c *Config) { c.FilePattern = "%s_%s.json" }},
		{"pattern with other verb", func(c *Config) { c.FilePattern = "%d%s.json" }},
		{"pattern with dir", func(c *Config) { c.FilePattern = "sub/%s.json" }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
