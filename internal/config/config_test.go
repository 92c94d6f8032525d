package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "quizdeck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", root)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUIZDECK_DECK", "")
	t.Setenv("QUIZDECK_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DeckPath != "" || cfg.DBPath != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	writeConfig(t, "deck: /tmp/my-deck.json\ndb: /tmp/my.db\n")
	t.Setenv("QUIZDECK_DECK", "")
	t.Setenv("QUIZDECK_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DeckPath != "/tmp/my-deck.json" {
		t.Errorf("DeckPath = %q, want /tmp/my-deck.json", cfg.DeckPath)
	}
	if cfg.DBPath != "/tmp/my.db" {
		t.Errorf("DBPath = %q, want /tmp/my.db", cfg.DBPath)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	writeConfig(t, "deck: /tmp/from-file.json\n")
	t.Setenv("QUIZDECK_DECK", "/tmp/from-env.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DeckPath != "/tmp/from-env.json" {
		t.Errorf("DeckPath = %q, want the environment value", cfg.DeckPath)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	writeConfig(t, ":\n\t- not yaml")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a malformed config file")
	}
}
