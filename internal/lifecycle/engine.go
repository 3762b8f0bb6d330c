// Package lifecycle implements the lead state machine: qualification
// against the budget threshold, simulated outbound calls, proposal
// delivery, and webhook-driven transitions.
package lifecycle

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/leadline-io/leadline/internal/models"
	"github.com/leadline-io/leadline/internal/outbox"
	"github.com/leadline-io/leadline/internal/proposal"
)

// Webhook event types accepted by HandleWebhook. Anything else is treated
// as a transcript-bearing completion event.
const (
	EventCallCompleted           = "call.completed"
	EventCallTranscriptFinalized = "call.transcript_finalized"
	EventCallSummary             = "call.summary"
	EventCallNoAnswer            = "call.no_answer"
	EventCallUnanswered          = "call.unanswered"
)

// EventTypes lists the recognized webhook events in the order forms
// present them.
var EventTypes = []string{
	EventCallCompleted,
	EventCallTranscriptFinalized,
	EventCallSummary,
	EventCallNoAnswer,
	EventCallUnanswered,
}

// proposalKeywords, matched case-insensitively against transcripts, signal
// the prospect asked for a proposal.
var proposalKeywords = []string{
	"send a proposal",
	"yes proposal",
	"email the proposal",
	"want a proposal",
	"please send proposal",
	"yes",
}

const noAnswerNote = "No pickup from local outbound"

// Engine drives lead transitions. All mutations act on the caller's lead
// value in place; persistence stays the caller's job.
type Engine struct {
	outbox    *outbox.Outbox
	generator *proposal.Generator
	threshold float64
}

// New creates an engine qualifying at the given budget threshold.
func New(ob *outbox.Outbox, gen *proposal.Generator, threshold float64) *Engine {
	return &Engine{outbox: ob, generator: gen, threshold: threshold}
}

// Qualify evaluates the lead against the budget threshold. Qualified leads
// get a simulated call triggered immediately; unqualified ones just settle.
// Re-qualifying is idempotent apart from the timestamp and a fresh call
// request for qualified leads.
func (e *Engine) Qualify(lead *models.Lead) (models.LeadStatus, error) {
	if lead.Budget >= e.threshold {
		lead.Status = models.StatusQualified
		lead.Touch()
		if err := e.TriggerCall(lead); err != nil {
			return lead.Status, err
		}
		return models.StatusQualified, nil
	}
	lead.Status = models.StatusUnqualified
	lead.Touch()
	return models.StatusUnqualified, nil
}

// TriggerCall writes a simulated outbound call request for the lead.
func (e *Engine) TriggerCall(lead *models.Lead) error {
	req := models.CallRequest{
		CallID:      uuid.NewString(),
		AssistantID: "local-assistant",
		PhoneNumber: lead.Phone,
		Customer: models.CallCustomer{
			Name:    lead.Name,
			Email:   lead.Email,
			Company: lead.Company,
		},
		Metadata:   models.CallMetadata{LeadEmail: lead.Email},
		WebhookURL: "(local)",
		Synthesis:  models.CallSynthesis{Prompt: "Friendly sales agent confirming proposal need."},
	}
	if _, err := e.outbox.WriteCallRequest(req); err != nil {
		return fmt.Errorf("trigger call: %w", err)
	}
	return nil
}

// SendProposal drafts a proposal for the lead, saves it, and writes the
// delivery email with the proposal attached. The lead moves to Proposal
// Sent regardless of whether the model or the template produced the text.
func (e *Engine) SendProposal(ctx context.Context, lead *models.Lead) error {
	content := e.generator.Generate(ctx, *lead)

	art, err := e.outbox.WriteProposal(lead.Company, content)
	if err != nil {
		return fmt.Errorf("send proposal: %w", err)
	}
	lead.ProposalPath = art.Path
	lead.Status = models.StatusProposalSent
	lead.Touch()

	company := lead.Company
	if company == "" {
		company = "Your"
	}
	subject := fmt.Sprintf("%s Automation Proposal", company)
	body := "Hi, attached is your tailored automation proposal. Happy to iterate.\n\n— Team"
	if _, err := e.outbox.WriteEmail(lead.Email, subject, body, []models.Attachment{
		{Filename: filepath.Base(art.Path), Path: art.Path},
	}); err != nil {
		return fmt.Errorf("send proposal email: %w", err)
	}

	e.outbox.Notify(fmt.Sprintf("Proposal saved for email to %s", lead.Email))
	return nil
}

// HandleWebhook processes a simulated call event for the lead. No-answer
// events mark the lead and save a follow-up email; every other event
// records the transcript and sends a proposal when the transcript asks for
// one.
func (e *Engine) HandleWebhook(ctx context.Context, lead *models.Lead, eventType, transcript string) error {
	if eventType == EventCallNoAnswer || eventType == EventCallUnanswered {
		lead.Status = models.StatusNoAnswer
		lead.Notes = noAnswerNote
		lead.Touch()
		body := "Hi, we tried reaching you by phone about your automation project.\n\n" +
			"You can reply to this email to coordinate a time.\n\n— Team"
		if _, err := e.outbox.WriteEmail(lead.Email, "Follow-up: Let's schedule a quick call", body, nil); err != nil {
			return fmt.Errorf("no-answer follow-up: %w", err)
		}
		e.outbox.Notify("No answer — follow-up saved.")
		return nil
	}

	lead.SetTranscript(transcript)
	lead.Touch()
	if wantsProposal(transcript) {
		return e.SendProposal(ctx, lead)
	}
	e.outbox.Notify("Call completed; no proposal requested or not detected.")
	return nil
}

// wantsProposal reports whether the transcript contains any proposal
// keyword, case-insensitively.
func wantsProposal(transcript string) bool {
	lower := strings.ToLower(transcript)
	for _, kw := range proposalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
