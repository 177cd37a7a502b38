package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"steadystate/internal/settings"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	Language          string `yaml:"language"`
	Background        string `yaml:"background"`
	IdlePauseMinutes  int    `yaml:"idle_pause_minutes"`
}

// DefaultPath returns the settings file location for appName.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads preferences from the YAML file at path.
// If the file does not exist, default settings are returned. The file is
// only ever read; nothing the timer does is written back.
func LoadSettings(path string) (settings.Settings, error) {
	loaded := settings.Default()
	if path == "" {
		return loaded, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loaded, nil
		}
		return loaded, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return loaded, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&loaded, fileData)
	return loaded.Normalize(), nil
}

func applyYamlSettings(target *settings.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		target.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		target.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		target.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.Language != "" {
		target.Language = fileData.Language
	}
	if fileData.Background != "" {
		target.Background = fileData.Background
	}
	if fileData.IdlePauseMinutes > 0 {
		target.IdlePauseMinutes = fileData.IdlePauseMinutes
	}
}
