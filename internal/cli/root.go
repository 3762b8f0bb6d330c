// Package cli implements the leadline CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/leadline-io/leadline/internal/app"
	"github.com/leadline-io/leadline/internal/tui"
)

var (
	flagWorkspace string
	flagNoLLM     bool
)

var rootCmd = &cobra.Command{
	Use:   "leadline",
	Short: "Qualify leads and draft proposals, all from local files",
	Long: `Leadline tracks sales leads in a local workspace: qualification against a
budget threshold, simulated outbound calls, and proposal drafting through a
local Ollama model with a template fallback. Every outbound action lands in
the outbox as a file; nothing leaves the machine.

Run without arguments to open the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return tui.Run(a)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// newApp builds the operation surface from the global flags.
func newApp() (*app.App, error) {
	return app.New(app.Options{
		Workspace:    flagWorkspace,
		DisableModel: flagNoLLM,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagWorkspace, "workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoLLM, "no-llm", false, "skip the model and always use the proposal template")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(leadCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(outboxCmd)
	rootCmd.AddCommand(proposeCmd)
	rootCmd.AddCommand(qualifyCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(webhookCmd)
}
