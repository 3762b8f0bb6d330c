package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leadline-io/leadline/internal/lifecycle"
)

var (
	flagWebhookEvent      string
	flagWebhookTranscript string
)

var webhookCmd = &cobra.Command{
	Use:   "webhook [email]",
	Short: "Simulate a call webhook event",
	Long: `Apply a simulated call event to the lead. Completion events record the
transcript and send a proposal when the prospect asked for one; no-answer
events mark the lead and save a follow-up email.

Pass the transcript with --transcript, or pipe it on stdin with
--transcript -.`,
	Args: cobra.ExactArgs(1),
	RunE: runWebhook,
}

func init() {
	webhookCmd.Flags().StringVar(&flagWebhookEvent, "event", lifecycle.EventCallCompleted,
		fmt.Sprintf("event type (%s)", strings.Join(lifecycle.EventTypes, ", ")))
	webhookCmd.Flags().StringVar(&flagWebhookTranscript, "transcript", "", "call transcript, or - for stdin")
}

func runWebhook(cmd *cobra.Command, args []string) error {
	if !slices.Contains(lifecycle.EventTypes, flagWebhookEvent) {
		return fmt.Errorf("unknown event type: %s", flagWebhookEvent)
	}

	transcript := flagWebhookTranscript
	if transcript == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read transcript from stdin: %w", err)
		}
		transcript = string(data)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.Webhook(cmd.Context(), args[0], flagWebhookEvent, transcript); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("Event processed."))
	return nil
}
