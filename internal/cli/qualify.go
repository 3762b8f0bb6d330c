package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var qualifyCmd = &cobra.Command{
	Use:   "qualify [email]",
	Short: "Qualify leads against the budget threshold",
	Long: `Qualify a single lead, or every lead still in New or Updated when no
email is given. Qualified leads get a simulated outbound call queued in the
outbox.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQualify,
}

var flagQualifyAll bool

func init() {
	qualifyCmd.Flags().BoolVar(&flagQualifyAll, "all", false, "qualify every lead still in New or Updated")
}

func runQualify(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if len(args) == 1 && !flagQualifyAll {
		status, err := a.Qualify(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", styleValue.Render(args[0]), statusBadge(status))
		return nil
	}

	n, err := a.QualifyPending()
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("No pending leads to qualify.")
		return nil
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Qualified %d leads.", n)))
	return nil
}
