package app

import (
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("SMARTDIET_DATA_DIR", dataDir)

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("default port: want=8080 got=%s", cfg.Port)
	}
	if cfg.DBPath != filepath.Join(dataDir, "data.db") {
		t.Fatalf("db path: want under data dir, got %s", cfg.DBPath)
	}
	if cfg.CatalogPath != filepath.Join(dataDir, "sample_recipes.json") {
		t.Fatalf("catalog path: want under data dir, got %s", cfg.CatalogPath)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "http://localhost:5173" {
		t.Fatalf("default origins: got %v", cfg.AllowOrigins)
	}
	if cfg.LogMode != "development" {
		t.Fatalf("default log mode: want=development got=%s", cfg.LogMode)
	}
	if !cfg.LogRedactionEnabled {
		t.Fatalf("redaction must default to enabled")
	}
	if cfg.LogHashSalt != "" {
		t.Fatalf("hash salt must default empty, got %q", cfg.LogHashSalt)
	}
}

func TestLoadConfig_LogSettingsFromEnv(t *testing.T) {
	t.Setenv("SMARTDIET_DATA_DIR", t.TempDir())
	t.Setenv("LOG_MODE", "production")
	t.Setenv("LOG_REDACTION_ENABLED", "false")
	t.Setenv("LOG_HASH_SALT", "pepper")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogMode != "production" {
		t.Fatalf("log mode: want=production got=%s", cfg.LogMode)
	}
	if cfg.LogRedactionEnabled {
		t.Fatalf("redaction should be disabled via env")
	}
	if cfg.LogHashSalt != "pepper" {
		t.Fatalf("hash salt: want=pepper got=%s", cfg.LogHashSalt)
	}
}

func TestLoadConfig_SplitsAndTrimsOrigins(t *testing.T) {
	t.Setenv("SMARTDIET_DATA_DIR", t.TempDir())
	t.Setenv("ALLOW_ORIGINS", "http://localhost:5173, https://app.example.com")

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://app.example.com" {
		t.Fatalf("origins: got %v", cfg.AllowOrigins)
	}
}
