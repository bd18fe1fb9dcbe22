package config

import (
	"os"
	"path/filepath"
	"testing"

	"retrobasic/internal/debug"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	cfg.Validate()
	if cfg.ScreenMode != 0 || cfg.Scale != 3 || cfg.SpeedFactor != 1.0 {
		t.Errorf("Default() was mutated by Validate: %+v", cfg)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want Default()", cfg)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want Default()", cfg)
	}
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot.toml")
	contents := `
screen_mode = 13
scale = 2
speed_factor = 2.5
log_level = "debug"
source_path = "demo.bas"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScreenMode != 13 {
		t.Errorf("ScreenMode = %d, want 13", cfg.ScreenMode)
	}
	if cfg.Scale != 2 {
		t.Errorf("Scale = %d, want 2", cfg.Scale)
	}
	if cfg.SpeedFactor != 2.5 {
		t.Errorf("SpeedFactor = %v, want 2.5", cfg.SpeedFactor)
	}
	if cfg.SourcePath != "demo.bas" {
		t.Errorf("SourcePath = %q, want demo.bas", cfg.SourcePath)
	}
	if cfg.ResolvedLogLevel() != debug.LogLevelDebug {
		t.Errorf("ResolvedLogLevel() = %v, want LogLevelDebug", cfg.ResolvedLogLevel())
	}
}

func TestValidateRepairsOutOfRangeFields(t *testing.T) {
	cfg := Config{ScreenMode: 99, Scale: 0, SpeedFactor: -1, LogLevel: "bogus"}
	cfg.Validate()
	if cfg.ScreenMode != 0 {
		t.Errorf("ScreenMode = %d, want repaired to 0", cfg.ScreenMode)
	}
	if cfg.Scale != 3 {
		t.Errorf("Scale = %d, want repaired to 3", cfg.Scale)
	}
	if cfg.SpeedFactor != 1.0 {
		t.Errorf("SpeedFactor = %v, want repaired to 1.0", cfg.SpeedFactor)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want repaired to info", cfg.LogLevel)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot.toml")
	want := Config{
		ScreenMode:  1,
		Scale:       4,
		SpeedFactor: 0.5,
		LogLevel:    "warning",
		SourcePath:  "game.bas",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
