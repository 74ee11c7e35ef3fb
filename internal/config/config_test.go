package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want %q", cfg.General.Currency, "$")
	}
	if cfg.Auth.LoginDelayMs != 200 {
		t.Errorf("LoginDelayMs = %d, want 200", cfg.Auth.LoginDelayMs)
	}
	if cfg.Appearance.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Appearance.Theme, "dark")
	}
	if Exists() {
		t.Error("Exists() = true before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "€"
	cfg.Auth.LoginDelayMs = 0
	cfg.Auth.Users = []UserConfig{{Email: "me@example.com", Password: "hunter2"}}
	cfg.Appearance.Theme = "light"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "€" {
		t.Errorf("Currency = %q, want %q", got.General.Currency, "€")
	}
	if got.Auth.LoginDelayMs != 0 {
		t.Errorf("LoginDelayMs = %d, want 0", got.Auth.LoginDelayMs)
	}
	if len(got.Auth.Users) != 1 || got.Auth.Users[0].Email != "me@example.com" {
		t.Errorf("Users = %+v", got.Auth.Users)
	}
	if got.Appearance.Theme != "light" {
		t.Errorf("Theme = %q, want %q", got.Appearance.Theme, "light")
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// Only one key set; everything else falls back to the defaults.
	path := filepath.Join(dir, "spendtrack", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want %q", cfg.Appearance.Theme, "terminal")
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want default %q", cfg.General.Currency, "$")
	}
}

func TestConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "spendtrack", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}
