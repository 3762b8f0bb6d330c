package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/leadline-io/leadline/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and edit workspace settings",
	Long: `View settings, or write the defaults file the workspace loads on
startup (` + config.SettingsFileName + `).`,
	RunE: runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the settings defaults file",
	RunE:  runSettingsInit,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings key and persist it",
	Long: `Set one of: model, base-url, threshold, timeout, auto-qualify.
The value is written to ` + config.SettingsFileName + ` and used from the
next run on.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	s := a.Settings()

	row := func(label, value string) {
		fmt.Printf("%s %s\n", styleLabel.Render(label+":"), styleValue.Render(value))
	}
	row("Model", s.Model)
	row("Base URL", s.BaseURL)
	row("Threshold", fmt.Sprintf("$%.0f", s.Threshold))
	row("Generate timeout", s.GenerateTimeout.String())
	row("Auto-qualify on import", strconv.FormatBool(s.AutoQualifyOnImport))
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := config.SaveSettings(a.Workspace(), a.Settings()); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Settings written to %s", config.SettingsFile(a.Workspace()))))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	s := a.Settings()

	key, value := args[0], args[1]
	switch key {
	case "model":
		s.Model = value
	case "base-url":
		s.BaseURL = value
	case "threshold":
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil || threshold < 0 {
			return fmt.Errorf("invalid threshold: %s", value)
		}
		s.Threshold = threshold
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout: %s", value)
		}
		s.GenerateTimeout = d
	case "auto-qualify":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid auto-qualify value: %s", value)
		}
		s.AutoQualifyOnImport = b
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}

	if err := config.SaveSettings(a.Workspace(), s); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Set %s = %s", key, value)))
	return nil
}
