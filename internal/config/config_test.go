package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func testCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("database.type", "sqlite", "")
	cmd.Flags().String("database.dsn", "./advent.db", "")
	cmd.Flags().String("language", "en", "")
	return cmd
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Run from an empty directory so no stray advent.yaml is picked up.
	dir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(oldWd) }()

	defaults := map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./advent.db",
		"language":      "en",
		"inputs.dir":    "inputs",
	}
	cfg, err := LoadConfig[Config](testCmd(), defaults, nil)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Database.Type != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.Database.Type)
	}
	if cfg.Inputs.Dir != "inputs" {
		t.Errorf("expected inputs dir default, got %s", cfg.Inputs.Dir)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "advent.yaml")
	content := "database:\n  type: postgres\n  dsn: host=localhost\nlanguage: es\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	defaults := map[string]any{
		"database.type": "sqlite",
		"database.dsn":  "./advent.db",
		"language":      "en",
	}
	cfg, err := LoadConfig[Config](testCmd(), defaults, &cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Database.Type != "postgres" {
		t.Errorf("expected postgres from file, got %s", cfg.Database.Type)
	}
	if cfg.Language != "es" {
		t.Errorf("expected es from file, got %s", cfg.Language)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "advent.yaml")
	if err := os.WriteFile(cfgPath, []byte("language: es\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ADVENT_LANGUAGE", "en")

	cfg, err := LoadConfig[Config](testCmd(), map[string]any{"language": "de"}, &cfgPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Language != "en" {
		t.Errorf("expected env to win, got %s", cfg.Language)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	// Point the user config dir at a temp location.
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	cfg := Config{
		Database: Database{Type: "sqlite", Dsn: "./advent.db"},
		Language: "en",
		Inputs:   Inputs{Dir: "inputs"},
	}
	if err := WriteConfigFile(&cfg, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := getConfigPath(false)
	if err != nil {
		t.Fatalf("getConfigPath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("config file is empty")
	}
}
