package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leadline-io/leadline/internal/models"
	"github.com/leadline-io/leadline/internal/store"
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Manage leads",
	Long:  `Add, list, and inspect leads in the workspace.`,
}

var (
	flagLeadName    string
	flagLeadCompany string
	flagLeadUseCase string
	flagLeadBudget  string
	flagLeadPhone   string
	flagLeadNotes   string
)

var leadAddCmd = &cobra.Command{
	Use:   "add [email]",
	Short: "Add or update a lead",
	Long: `Add a lead keyed by email. An existing lead with the same email
(case-insensitive) is updated field-wise instead of duplicated.`,
	Args: cobra.ExactArgs(1),
	RunE: runLeadAdd,
}

var leadListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List leads",
	RunE:    runLeadList,
}

var leadShowCmd = &cobra.Command{
	Use:   "show [email]",
	Short: "Show a lead's full record",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeadShow,
}

func init() {
	leadAddCmd.Flags().StringVar(&flagLeadName, "name", "", "prospect name")
	leadAddCmd.Flags().StringVar(&flagLeadCompany, "company", "", "company name")
	leadAddCmd.Flags().StringVar(&flagLeadUseCase, "use-case", "", "automation use case")
	leadAddCmd.Flags().StringVar(&flagLeadBudget, "budget", "", "stated budget in dollars")
	leadAddCmd.Flags().StringVar(&flagLeadPhone, "phone", "", "phone number")
	leadAddCmd.Flags().StringVar(&flagLeadNotes, "notes", "", "free-form notes")

	leadCmd.AddCommand(leadAddCmd)
	leadCmd.AddCommand(leadListCmd)
	leadCmd.AddCommand(leadShowCmd)
}

func runLeadAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var budget float64
	if flagLeadBudget != "" {
		budget, err = strconv.ParseFloat(flagLeadBudget, 64)
		if err != nil {
			return fmt.Errorf("invalid budget: %s", flagLeadBudget)
		}
	}

	lead := models.Lead{
		Name:    flagLeadName,
		Email:   args[0],
		Company: flagLeadCompany,
		UseCase: flagLeadUseCase,
		Budget:  budget,
		Phone:   flagLeadPhone,
		Notes:   flagLeadNotes,
	}
	if err := a.SaveLead(lead); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Lead saved: %s", args[0])))
	return nil
}

func statusBadge(status models.LeadStatus) string {
	switch status {
	case models.StatusNew:
		return badgeNew.Render(string(status))
	case models.StatusUpdated:
		return badgeUpdated.Render(string(status))
	case models.StatusQualified:
		return badgeQualified.Render(string(status))
	case models.StatusUnqualified:
		return badgeUnqualified.Render(string(status))
	case models.StatusProposalSent:
		return badgeProposalSent.Render(string(status))
	case models.StatusNoAnswer:
		return badgeNoAnswer.Render(string(status))
	default:
		return string(status)
	}
}

func runLeadList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	leads := a.Leads()
	if len(leads) == 0 {
		fmt.Println("No leads. Run 'leadline lead add' or 'leadline import' to create some.")
		return nil
	}

	for _, lead := range leads {
		name := lead.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%-14s %s %s %s\n",
			statusBadge(lead.Status),
			styleValue.Render(name),
			styleLabel.Render(lead.Email),
			styleHint.Render(fmt.Sprintf("$%.0f", lead.Budget)),
		)
	}
	return nil
}

func runLeadShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	lead := store.Find(a.Leads(), args[0])
	if lead == nil {
		return fmt.Errorf("lead not found: %s", args[0])
	}

	row := func(label, value string) {
		if value != "" {
			fmt.Printf("%s %s\n", styleLabel.Render(label+":"), styleValue.Render(value))
		}
	}
	row("Name", lead.Name)
	row("Email", lead.Email)
	row("Company", lead.Company)
	row("Use case", lead.EffectiveUseCase())
	row("Budget", fmt.Sprintf("$%.0f", lead.Budget))
	row("Phone", lead.Phone)
	fmt.Printf("%s %s\n", styleLabel.Render("Status:"), statusBadge(lead.Status))
	row("Proposal", lead.ProposalPath)
	row("Notes", lead.Notes)
	if !lead.LastActionAt.IsZero() {
		row("Last action", lead.LastActionAt.Format("2006-01-02 15:04:05 MST"))
	}
	if lead.CallTranscript != "" {
		fmt.Printf("%s\n%s\n", styleLabel.Render("Transcript:"), lead.CallTranscript)
	}
	return nil
}
