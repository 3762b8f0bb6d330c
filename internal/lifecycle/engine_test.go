package lifecycle

import (
	"context"
	"strings"
	"testing"

	"github.com/leadline-io/leadline/internal/config"
	"github.com/leadline-io/leadline/internal/models"
	"github.com/leadline-io/leadline/internal/outbox"
	"github.com/leadline-io/leadline/internal/proposal"
)

func newTestEngine(t *testing.T, threshold float64) (*Engine, *outbox.Outbox) {
	t.Helper()
	workspace := t.TempDir()
	if err := config.EnsureWorkspace(workspace); err != nil {
		t.Fatal(err)
	}
	ob := outbox.New(workspace)
	gen := proposal.NewGenerator(nil, ob)
	return New(ob, gen, threshold), ob
}

func TestQualifyAboveThreshold(t *testing.T) {
	e, ob := newTestEngine(t, 10000)
	lead := models.Lead{Name: "Jane", Email: "jane@acme.com", Company: "Acme", Budget: 12000}

	status, err := e.Qualify(&lead)
	if err != nil {
		t.Fatal(err)
	}
	if status != models.StatusQualified || lead.Status != models.StatusQualified {
		t.Errorf("expected Qualified, got %q", status)
	}

	calls, err := ob.List(models.ArtifactCallRequest)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 {
		t.Fatalf("expected one call request, got %d", len(calls))
	}
	content, err := ob.Read(models.ArtifactCallRequest, calls[0].Name)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"assistantId": "local-assistant"`,
		`"leadEmail": "jane@acme.com"`,
		`"webhookUrl": "(local)"`,
		"Friendly sales agent confirming proposal need.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("call request missing %q:\n%s", want, content)
		}
	}
}

func TestQualifyRepeatedIsDeterministic(t *testing.T) {
	e, ob := newTestEngine(t, 10000)
	lead := models.Lead{Name: "Jane", Email: "jane@acme.com", Budget: 12000}

	for i := 0; i < 2; i++ {
		status, err := e.Qualify(&lead)
		if err != nil {
			t.Fatal(err)
		}
		if status != models.StatusQualified {
			t.Fatalf("invocation %d: expected Qualified, got %q", i+1, status)
		}
	}

	// One call request is written per invocation. Reruns within the same
	// second land on the same timestamped filename, so count log lines
	// rather than files.
	created := 0
	for _, line := range ob.Tail(20) {
		if strings.Contains(line, "Simulated call created") {
			created++
		}
	}
	if created != 2 {
		t.Errorf("expected one call write per invocation, got %d", created)
	}

	calls, err := ob.List(models.ArtifactCallRequest)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) == 0 || len(calls) > 2 {
		t.Errorf("expected at most one artifact per invocation, got %d", len(calls))
	}
}

func TestQualifyAtThresholdBoundary(t *testing.T) {
	e, _ := newTestEngine(t, 10000)
	lead := models.Lead{Email: "a@b.com", Budget: 10000}

	status, err := e.Qualify(&lead)
	if err != nil {
		t.Fatal(err)
	}
	if status != models.StatusQualified {
		t.Errorf("budget equal to threshold should qualify, got %q", status)
	}
}

func TestQualifyBelowThreshold(t *testing.T) {
	e, ob := newTestEngine(t, 10000)
	lead := models.Lead{Email: "a@b.com", Budget: 9999}

	status, err := e.Qualify(&lead)
	if err != nil {
		t.Fatal(err)
	}
	if status != models.StatusUnqualified {
		t.Errorf("expected Unqualified, got %q", status)
	}
	calls, _ := ob.List(models.ArtifactCallRequest)
	if len(calls) != 0 {
		t.Errorf("unqualified lead must not trigger a call, got %d", len(calls))
	}
}

func TestSendProposal(t *testing.T) {
	e, ob := newTestEngine(t, 10000)
	lead := models.Lead{Name: "Jane", Email: "jane@acme.com", Company: "Acme", UseCase: "support automation"}

	if err := e.SendProposal(context.Background(), &lead); err != nil {
		t.Fatal(err)
	}
	if lead.Status != models.StatusProposalSent {
		t.Errorf("expected Proposal Sent, got %q", lead.Status)
	}
	if lead.ProposalPath == "" {
		t.Error("expected ProposalPath to be set")
	}

	proposals, _ := ob.List(models.ArtifactProposal)
	if len(proposals) != 1 {
		t.Fatalf("expected one proposal, got %d", len(proposals))
	}
	emails, _ := ob.List(models.ArtifactEmail)
	if len(emails) != 1 {
		t.Fatalf("expected one delivery email, got %d", len(emails))
	}
	content, err := ob.Read(models.ArtifactEmail, emails[0].Name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "# Subject: Acme Automation Proposal") {
		t.Errorf("unexpected subject in:\n%s", content)
	}
	if !strings.Contains(content, "## Attachments") || !strings.Contains(content, lead.ProposalPath) {
		t.Errorf("expected proposal attachment reference in:\n%s", content)
	}
}

func TestHandleWebhookNoAnswer(t *testing.T) {
	for _, event := range []string{EventCallNoAnswer, EventCallUnanswered} {
		t.Run(event, func(t *testing.T) {
			e, ob := newTestEngine(t, 10000)
			lead := models.Lead{Email: "jane@acme.com", Status: models.StatusQualified}

			if err := e.HandleWebhook(context.Background(), &lead, event, ""); err != nil {
				t.Fatal(err)
			}
			if lead.Status != models.StatusNoAnswer {
				t.Errorf("expected No Answer, got %q", lead.Status)
			}
			if lead.Notes != "No pickup from local outbound" {
				t.Errorf("unexpected notes %q", lead.Notes)
			}
			emails, _ := ob.List(models.ArtifactEmail)
			if len(emails) != 1 {
				t.Fatalf("expected follow-up email, got %d", len(emails))
			}
			content, _ := ob.Read(models.ArtifactEmail, emails[0].Name)
			if !strings.Contains(content, "Follow-up") {
				t.Errorf("unexpected follow-up email:\n%s", content)
			}
		})
	}
}

func TestHandleWebhookProposalRequested(t *testing.T) {
	e, ob := newTestEngine(t, 10000)
	lead := models.Lead{Name: "Jane", Email: "jane@acme.com", Company: "Acme", Status: models.StatusQualified}

	err := e.HandleWebhook(context.Background(), &lead, EventCallCompleted, "Great chat. Please SEND A PROPOSAL.")
	if err != nil {
		t.Fatal(err)
	}
	if lead.Status != models.StatusProposalSent {
		t.Errorf("expected Proposal Sent, got %q", lead.Status)
	}
	if lead.CallTranscript == "" {
		t.Error("expected transcript to be recorded")
	}
	proposals, _ := ob.List(models.ArtifactProposal)
	if len(proposals) != 1 {
		t.Errorf("expected one proposal, got %d", len(proposals))
	}
}

func TestHandleWebhookNoProposalRequested(t *testing.T) {
	e, ob := newTestEngine(t, 10000)
	lead := models.Lead{Email: "jane@acme.com", Status: models.StatusQualified}

	err := e.HandleWebhook(context.Background(), &lead, EventCallCompleted, "Thanks, we will think about it.")
	if err != nil {
		t.Fatal(err)
	}
	if lead.Status != models.StatusQualified {
		t.Errorf("status should be unchanged, got %q", lead.Status)
	}
	if lead.CallTranscript != "Thanks, we will think about it." {
		t.Errorf("unexpected transcript %q", lead.CallTranscript)
	}
	proposals, _ := ob.List(models.ArtifactProposal)
	if len(proposals) != 0 {
		t.Errorf("no proposal expected, got %d", len(proposals))
	}
}

func TestHandleWebhookTruncatesTranscript(t *testing.T) {
	e, _ := newTestEngine(t, 10000)
	lead := models.Lead{Email: "jane@acme.com"}

	long := strings.Repeat("a", models.TranscriptLimit+500)
	if err := e.HandleWebhook(context.Background(), &lead, EventCallSummary, long); err != nil {
		t.Fatal(err)
	}
	if got := len([]rune(lead.CallTranscript)); got != models.TranscriptLimit {
		t.Errorf("expected transcript truncated to %d runes, got %d", models.TranscriptLimit, got)
	}
}

func TestWantsProposalKeywords(t *testing.T) {
	tests := []struct {
		transcript string
		want       bool
	}{
		{"Please send a proposal soon", true},
		{"YES", true},
		{"email the proposal to me", true},
		{"not interested right now", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			if got := wantsProposal(tt.transcript); got != tt.want {
				t.Errorf("wantsProposal(%q) = %v, want %v", tt.transcript, got, tt.want)
			}
		})
	}
}
