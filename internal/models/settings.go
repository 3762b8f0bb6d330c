package models

import "time"

// Settings holds session-scoped configuration. Defaults may be seeded from
// an optional leadline.yaml in the workspace; changes made during a session
// stay in memory unless explicitly saved as new startup defaults.
type Settings struct {
	Model               string        `yaml:"model"`
	BaseURL             string        `yaml:"base_url"`
	Threshold           float64       `yaml:"qualification_threshold"`
	GenerateTimeout     time.Duration `yaml:"generate_timeout"`
	AutoQualifyOnImport bool          `yaml:"auto_qualify_on_import"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Model:               "gemma3",
		BaseURL:             "http://127.0.0.1:11434",
		Threshold:           10000,
		GenerateTimeout:     60 * time.Second,
		AutoQualifyOnImport: false,
	}
}
