package storage

import (
	"os"
	"path/filepath"
	"testing"

	"stillpoint/internal/core/model"
	"stillpoint/internal/ui/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := loadSettingsFile(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	saved := preferences.Settings{
		Duration:  model.Duration{Hours: 1, Minutes: 15, Seconds: 30},
		Signal:    model.SignalToneB,
		Breathing: true,
		DarkTheme: true,

		InhaleSeconds: 5,
		HoldSeconds:   0,
		ExhaleSeconds: 8,
	}
	if err := saveSettingsFile(path, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestLoadSettingsClampsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "hours: 99\nminutes: 10\nseconds: -3\ncompletion_signal: kazoo\ninhale_seconds: 400\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loaded, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	defaults := preferences.DefaultSettings()
	if loaded.Duration.Hours != defaults.Duration.Hours {
		t.Fatalf("expected out-of-range hours ignored, got %d", loaded.Duration.Hours)
	}
	if loaded.Duration.Minutes != 10 {
		t.Fatalf("expected minutes 10, got %d", loaded.Duration.Minutes)
	}
	if loaded.Duration.Seconds != defaults.Duration.Seconds {
		t.Fatalf("expected out-of-range seconds ignored, got %d", loaded.Duration.Seconds)
	}
	if loaded.Signal != defaults.Signal {
		t.Fatalf("expected unknown signal ignored, got %s", loaded.Signal)
	}
	if loaded.InhaleSeconds != defaults.InhaleSeconds {
		t.Fatalf("expected out-of-range inhale ignored, got %d", loaded.InhaleSeconds)
	}
}

func TestLoadSettingsMalformedYamlSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("hours: [not yaml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := loadSettingsFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
