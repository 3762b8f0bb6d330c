package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leadline-io/leadline/internal/models"
)

// LoadSettings loads session settings, seeded from the workspace's optional
// leadline.yaml. The file is unmarshaled over the defaults, so keys left
// out keep their default while an explicit zero threshold (qualify
// everyone) is respected.
func LoadSettings(workspace string) (*models.Settings, error) {
	s, err := LoadYAMLOrDefault(SettingsFile(workspace), models.NewSettings)
	if err != nil {
		return nil, err
	}
	normalizeSettings(s)
	return s, nil
}

// SaveSettings writes the settings defaults file for future sessions.
func SaveSettings(workspace string, s *models.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return WriteFileAtomic(SettingsFile(workspace), data)
}

func normalizeSettings(s *models.Settings) {
	defaults := models.NewSettings()
	if s.Model == "" {
		s.Model = defaults.Model
	}
	if s.BaseURL == "" {
		s.BaseURL = defaults.BaseURL
	}
	if s.Threshold < 0 {
		s.Threshold = defaults.Threshold
	}
	if s.GenerateTimeout <= 0 {
		s.GenerateTimeout = defaults.GenerateTimeout
	}
}
