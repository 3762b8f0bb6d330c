package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadline-io/leadline/internal/models"
)

var outboxCmd = &cobra.Command{
	Use:   "outbox",
	Short: "Browse outbox artifacts",
	Long:  `List and read the files written by simulated sends: emails, call requests, and proposals.`,
}

func init() {
	outboxCmd.AddCommand(newOutboxListCmd("emails", models.ArtifactEmail, "List saved emails"))
	outboxCmd.AddCommand(newOutboxListCmd("calls", models.ArtifactCallRequest, "List simulated call requests"))
	outboxCmd.AddCommand(newOutboxListCmd("proposals", models.ArtifactProposal, "List generated proposals"))
	outboxCmd.AddCommand(outboxShowCmd)
}

func newOutboxListCmd(use string, kind models.ArtifactKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			artifacts, err := a.Artifacts(kind)
			if err != nil {
				return err
			}
			if len(artifacts) == 0 {
				fmt.Println("Outbox is empty.")
				return nil
			}
			for _, art := range artifacts {
				fmt.Println(styleValue.Render(art.Name))
			}
			return nil
		},
	}
}

var outboxShowCmd = &cobra.Command{
	Use:   "show [kind] [name]",
	Short: "Print an artifact's content",
	Long:  `Print an outbox artifact. Kind is one of: email, call_request, proposal.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		content, err := a.ReadArtifact(models.ArtifactKind(args[0]), args[1])
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}
