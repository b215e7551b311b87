package config

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/tally-test"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Version != cfg.Version {
		t.Errorf("Version = %q, want %q", loaded.Version, cfg.Version)
	}
	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.DefaultPriority != "low" {
		t.Errorf("DefaultPriority = %q, want %q", loaded.DefaultPriority, "low")
	}
}

func TestDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// No config file: falls back to ~/.tally.
	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if dir != filepath.Join(home, ".tally") {
		t.Errorf("DataDir() = %q, want %q", dir, filepath.Join(home, ".tally"))
	}

	// Config override wins.
	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/elsewhere"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	dir, err = DataDir()
	if err != nil {
		t.Fatalf("DataDir() error = %v", err)
	}
	if dir != "/tmp/elsewhere" {
		t.Errorf("DataDir() = %q, want %q", dir, "/tmp/elsewhere")
	}
}
