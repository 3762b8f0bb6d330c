package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadline-io/leadline/internal/store"
)

var proposeCmd = &cobra.Command{
	Use:   "propose [email]",
	Short: "Draft and deliver a proposal",
	Long: `Generate a proposal for the lead and save the delivery email in the
outbox. The local model drafts the text when reachable; otherwise the
deterministic template is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runPropose,
}

func runPropose(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.SendProposal(cmd.Context(), args[0]); err != nil {
		return err
	}

	if lead := store.Find(a.Leads(), args[0]); lead != nil && lead.ProposalPath != "" {
		fmt.Println(styleSuccess.Render("Proposal sent."))
		fmt.Printf("%s %s\n", styleLabel.Render("Saved to:"), styleValue.Render(lead.ProposalPath))
	}
	return nil
}
