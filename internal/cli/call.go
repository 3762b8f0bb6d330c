package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call [email]",
	Short: "Trigger a simulated outbound call",
	Long: `Write a simulated call request for the lead into the outbox. The lead's
status is unchanged; call outcomes arrive through 'leadline webhook'.`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.TriggerCall(args[0]); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("Call request created in outbox."))
	return nil
}
