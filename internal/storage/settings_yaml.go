package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stillpoint/internal/core/model"
	"stillpoint/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Hours   int `yaml:"hours"`
	Minutes int `yaml:"minutes"`
	Seconds int `yaml:"seconds"`

	Signal          string `yaml:"completion_signal"`
	BreathingCircle bool   `yaml:"breathing_circle"`
	DarkTheme       bool   `yaml:"dark_theme"`

	InhaleSeconds int `yaml:"inhale_seconds"`
	HoldSeconds   int `yaml:"hold_seconds"`
	ExhaleSeconds int `yaml:"exhale_seconds"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Hours:   settings.Duration.Hours,
		Minutes: settings.Duration.Minutes,
		Seconds: settings.Duration.Seconds,

		Signal:          string(settings.Signal),
		BreathingCircle: settings.Breathing,
		DarkTheme:       settings.DarkTheme,

		InhaleSeconds: settings.InhaleSeconds,
		HoldSeconds:   settings.HoldSeconds,
		ExhaleSeconds: settings.ExhaleSeconds,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// applyYamlSettings folds file values over the defaults, clamping each field
// to the range the pickers can express.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Hours >= 0 && fileData.Hours <= 12 {
		settings.Duration.Hours = fileData.Hours
	}
	if fileData.Minutes >= 0 && fileData.Minutes <= 59 {
		settings.Duration.Minutes = fileData.Minutes
	}
	if fileData.Seconds >= 0 && fileData.Seconds <= 59 {
		settings.Duration.Seconds = fileData.Seconds
	}

	if signal := model.CompletionSignal(fileData.Signal); signal.Valid() {
		settings.Signal = signal
	}

	settings.Breathing = fileData.BreathingCircle
	settings.DarkTheme = fileData.DarkTheme

	if fileData.InhaleSeconds > 0 && fileData.InhaleSeconds <= 30 {
		settings.InhaleSeconds = fileData.InhaleSeconds
	}
	if fileData.HoldSeconds >= 0 && fileData.HoldSeconds <= 30 {
		settings.HoldSeconds = fileData.HoldSeconds
	}
	if fileData.ExhaleSeconds > 0 && fileData.ExhaleSeconds <= 30 {
		settings.ExhaleSeconds = fileData.ExhaleSeconds
	}
}
