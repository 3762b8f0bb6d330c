package config

import (
	"os"
	"testing"

	"github.com/leadline-io/leadline/internal/models"
)

func writeSettingsFile(t *testing.T, workspace, content string) {
	t.Helper()
	if err := os.WriteFile(SettingsFile(workspace), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defaults := models.NewSettings()
	if *s != *defaults {
		t.Errorf("expected defaults for missing file, got %+v", s)
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	workspace := t.TempDir()
	writeSettingsFile(t, workspace, "model: llama3\n")

	s, err := LoadSettings(workspace)
	if err != nil {
		t.Fatal(err)
	}
	if s.Model != "llama3" {
		t.Errorf("expected model from file, got %q", s.Model)
	}
	defaults := models.NewSettings()
	if s.BaseURL != defaults.BaseURL || s.Threshold != defaults.Threshold {
		t.Errorf("omitted keys should keep defaults, got %+v", s)
	}
}

func TestLoadSettingsZeroThresholdRespected(t *testing.T) {
	workspace := t.TempDir()
	writeSettingsFile(t, workspace, "qualification_threshold: 0\n")

	s, err := LoadSettings(workspace)
	if err != nil {
		t.Fatal(err)
	}
	// Zero means qualify everyone; it must not be reset to the default.
	if s.Threshold != 0 {
		t.Errorf("expected explicit zero threshold to survive, got %v", s.Threshold)
	}
}

func TestLoadSettingsNegativeThresholdReset(t *testing.T) {
	workspace := t.TempDir()
	writeSettingsFile(t, workspace, "qualification_threshold: -5\n")

	s, err := LoadSettings(workspace)
	if err != nil {
		t.Fatal(err)
	}
	if s.Threshold != models.NewSettings().Threshold {
		t.Errorf("expected negative threshold reset to default, got %v", s.Threshold)
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	workspace := t.TempDir()
	in := models.NewSettings()
	in.Model = "llama3"
	in.Threshold = 0

	if err := SaveSettings(workspace, in); err != nil {
		t.Fatal(err)
	}
	out, err := LoadSettings(workspace)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}
