package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestValidateClampsValues(t *testing.T) {
	cfg := &Config{
		WindowWidth:  10,
		WindowHeight: -5,
		CameraDevice: -1,
		JPEGQuality:  250,
		HistorySize:  0,
		LogLevel:     "verbose",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.WindowWidth != 400 || cfg.WindowHeight != 300 {
		t.Errorf("window size not clamped: %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.CameraDevice != 0 {
		t.Errorf("camera device not clamped: %d", cfg.CameraDevice)
	}
	if cfg.JPEGQuality != 92 {
		t.Errorf("jpeg quality not clamped: %d", cfg.JPEGQuality)
	}
	if cfg.HistorySize != 32 {
		t.Errorf("history size not clamped: %d", cfg.HistorySize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level not normalized: %s", cfg.LogLevel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workbench.json")

	cfg := DefaultConfig()
	cfg.CameraDevice = 2
	cfg.JPEGQuality = 80
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CameraDevice != 2 || loaded.JPEGQuality != 80 {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("corrupt file should yield defaults, got %+v", cfg)
	}
}
