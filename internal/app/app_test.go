package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leadline-io/leadline/internal/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Options{Workspace: t.TempDir(), DisableModel: true})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestSaveLeadRequiresEmail(t *testing.T) {
	a := newTestApp(t)
	if err := a.SaveLead(models.Lead{Name: "No Email"}); err == nil {
		t.Fatal("expected error for lead without email")
	}
	if err := a.SaveLead(models.Lead{Email: "   "}); err == nil {
		t.Fatal("expected error for whitespace email")
	}
}

func TestSaveAndListLeads(t *testing.T) {
	a := newTestApp(t)
	if err := a.SaveLead(models.Lead{Name: "Jane", Email: "jane@acme.com", Budget: 12000}); err != nil {
		t.Fatal(err)
	}
	leads := a.Leads()
	if len(leads) != 1 || leads[0].Status != models.StatusNew {
		t.Fatalf("unexpected leads %+v", leads)
	}
}

func TestQualifyUnknownLead(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Qualify("nobody@x.com")
	if err == nil || !strings.Contains(err.Error(), "lead not found: nobody@x.com") {
		t.Fatalf("expected lead-not-found error, got %v", err)
	}
}

func TestImportFile(t *testing.T) {
	a := newTestApp(t)

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	content := strings.Join([]string{
		"Name,Email,Company,UseCase,Budget",
		"Jane,jane@acme.com,Acme,Invoice automation,12000",
		"NoEmail,,Nowhere,,1",
		"Bob,bob@beta.io,Beta,Chat bots,4000",
	}, "\n")
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := a.ImportFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if res.Imported != 2 || res.Skipped != 1 {
		t.Errorf("unexpected result %+v", res)
	}
	if len(a.Leads()) != 2 {
		t.Errorf("expected 2 leads, got %d", len(a.Leads()))
	}
}

func TestImportFileAutoQualify(t *testing.T) {
	a := newTestApp(t)
	a.Settings().AutoQualifyOnImport = true

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	content := "Name,Email,Budget\nJane,jane@acme.com,12000\nBob,bob@beta.io,4000\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := a.ImportFile(csvPath); err != nil {
		t.Fatal(err)
	}

	byEmail := map[string]models.LeadStatus{}
	for _, l := range a.Leads() {
		byEmail[l.Email] = l.Status
	}
	if byEmail["jane@acme.com"] != models.StatusQualified {
		t.Errorf("expected jane Qualified, got %q", byEmail["jane@acme.com"])
	}
	if byEmail["bob@beta.io"] != models.StatusUnqualified {
		t.Errorf("expected bob Unqualified, got %q", byEmail["bob@beta.io"])
	}
}

func TestQualifyPendingSkipsSettled(t *testing.T) {
	a := newTestApp(t)
	for _, l := range []models.Lead{
		{Email: "new@x.com", Budget: 12000},
		{Email: "settled@x.com", Budget: 12000},
	} {
		if err := a.SaveLead(l); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := a.Qualify("settled@x.com"); err != nil {
		t.Fatal(err)
	}

	n, err := a.QualifyPending()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 pending lead evaluated, got %d", n)
	}
}

// Full journey: add, qualify, receive the webhook, confirm the proposal and
// its artifacts landed.
func TestLeadJourney(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	err := a.SaveLead(models.Lead{
		Name: "Jane", Email: "jane@acme.com", Company: "Acme",
		UseCase: "Invoice automation", Budget: 12000,
	})
	if err != nil {
		t.Fatal(err)
	}

	status, err := a.Qualify("jane@acme.com")
	if err != nil {
		t.Fatal(err)
	}
	if status != models.StatusQualified {
		t.Fatalf("expected Qualified, got %q", status)
	}
	calls, _ := a.Artifacts(models.ArtifactCallRequest)
	if len(calls) != 1 {
		t.Fatalf("expected one call request, got %d", len(calls))
	}

	err = a.Webhook(ctx, "jane@acme.com", "call.completed", "Great chat. Please send a proposal.")
	if err != nil {
		t.Fatal(err)
	}

	lead := a.Leads()[0]
	if lead.Status != models.StatusProposalSent {
		t.Errorf("expected Proposal Sent, got %q", lead.Status)
	}
	if lead.ProposalPath == "" {
		t.Error("expected proposal path recorded")
	}
	if _, err := os.Stat(lead.ProposalPath); err != nil {
		t.Errorf("proposal file missing: %v", err)
	}

	proposals, _ := a.Artifacts(models.ArtifactProposal)
	if len(proposals) != 1 {
		t.Errorf("expected one proposal artifact, got %d", len(proposals))
	}
	emails, _ := a.Artifacts(models.ArtifactEmail)
	if len(emails) != 1 {
		t.Errorf("expected one email artifact, got %d", len(emails))
	}

	tail := a.ActivityTail(10)
	if len(tail) == 0 {
		t.Fatal("expected activity log entries")
	}
	joined := strings.Join(tail, "\n")
	if !strings.Contains(joined, "Simulated call created") {
		t.Errorf("missing call notification in tail:\n%s", joined)
	}
	if !strings.Contains(joined, "Proposal saved for email to jane@acme.com") {
		t.Errorf("missing proposal notification in tail:\n%s", joined)
	}
}

func TestWebhookNoAnswerJourney(t *testing.T) {
	a := newTestApp(t)
	if err := a.SaveLead(models.Lead{Email: "jane@acme.com", Budget: 12000}); err != nil {
		t.Fatal(err)
	}
	if err := a.Webhook(context.Background(), "jane@acme.com", "call.no_answer", ""); err != nil {
		t.Fatal(err)
	}

	lead := a.Leads()[0]
	if lead.Status != models.StatusNoAnswer {
		t.Errorf("expected No Answer, got %q", lead.Status)
	}
	emails, _ := a.Artifacts(models.ArtifactEmail)
	if len(emails) != 1 {
		t.Errorf("expected follow-up email, got %d", len(emails))
	}
}

func TestApplySettingsChangesThreshold(t *testing.T) {
	a := newTestApp(t)
	if err := a.SaveLead(models.Lead{Email: "jane@acme.com", Budget: 5000}); err != nil {
		t.Fatal(err)
	}

	s := *a.Settings()
	s.Threshold = 4000
	a.ApplySettings(s)

	status, err := a.Qualify("jane@acme.com")
	if err != nil {
		t.Fatal(err)
	}
	if status != models.StatusQualified {
		t.Errorf("expected Qualified at lowered threshold, got %q", status)
	}
}
