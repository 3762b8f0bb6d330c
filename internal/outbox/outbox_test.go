package outbox

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/leadline-io/leadline/internal/config"
	"github.com/leadline-io/leadline/internal/models"
)

func newTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	workspace := t.TempDir()
	if err := config.EnsureWorkspace(workspace); err != nil {
		t.Fatal(err)
	}
	return New(workspace)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces to underscores", "Acme Corp", "Acme_Corp"},
		{"drops punctuation", "jane@acme.com", "janeacmecom"},
		{"keeps dashes and underscores", "re-qualify_now", "re-qualify_now"},
		{"trims whitespace", "  hi  ", "hi"},
		{"empty falls back", "!!!", "item"},
		{"caps long input", strings.Repeat("a", 120), strings.Repeat("a", 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteEmail(t *testing.T) {
	o := newTestOutbox(t)

	art, err := o.WriteEmail("jane@acme.com", "Your Proposal", "Hello Jane,", []models.Attachment{
		{Filename: "acme_proposal.md", Path: "/tmp/acme_proposal.md"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if art.Kind != models.ArtifactEmail {
		t.Errorf("expected email artifact, got %q", art.Kind)
	}
	if !strings.HasSuffix(art.Name, "__janeacmecom__Your_Proposal.md") {
		t.Errorf("unexpected filename %q", art.Name)
	}

	content, err := o.Read(models.ArtifactEmail, art.Name)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# To: jane@acme.com\n",
		"# Subject: Your Proposal\n",
		"Hello Jane,",
		"## Attachments\n",
		"- acme_proposal.md -> /tmp/acme_proposal.md\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("email missing %q:\n%s", want, content)
		}
	}
}

func TestWriteEmailWithoutAttachments(t *testing.T) {
	o := newTestOutbox(t)

	art, err := o.WriteEmail("a@b.com", "Follow up", "Sorry we missed you.", nil)
	if err != nil {
		t.Fatal(err)
	}
	content, err := o.Read(models.ArtifactEmail, art.Name)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(content, "## Attachments") {
		t.Error("attachment section should be absent when there are none")
	}
}

func TestWriteCallRequest(t *testing.T) {
	o := newTestOutbox(t)

	art, err := o.WriteCallRequest(models.CallRequest{
		CallID:      "abc-123",
		AssistantID: "local-assistant",
		Customer:    models.CallCustomer{Name: "Jane", Email: "jane@acme.com", Company: "Acme"},
		Metadata:    models.CallMetadata{LeadEmail: "jane@acme.com"},
		WebhookURL:  "(local)",
		Synthesis:   models.CallSynthesis{Prompt: "Friendly sales agent confirming proposal need."},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(art.Name, "call_janeacmecom_") {
		t.Errorf("unexpected filename %q", art.Name)
	}

	data, err := os.ReadFile(art.Path)
	if err != nil {
		t.Fatal(err)
	}
	var got models.CallRequest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("call request is not valid JSON: %v", err)
	}
	if got.Metadata.LeadEmail != "jane@acme.com" {
		t.Errorf("expected lead email in metadata, got %q", got.Metadata.LeadEmail)
	}
	if !strings.Contains(string(data), `"callId"`) {
		t.Error("expected camelCase callId key")
	}
}

func TestWriteProposal(t *testing.T) {
	o := newTestOutbox(t)

	art, err := o.WriteProposal("Acme Corp", "# Proposal\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(art.Name, "Acme_Corp_") || !strings.HasSuffix(art.Name, ".md") {
		t.Errorf("unexpected filename %q", art.Name)
	}
}

func TestArtifactWritesLogNotifications(t *testing.T) {
	o := newTestOutbox(t)

	var hooked []string
	o.SetNotifyHook(func(msg string) { hooked = append(hooked, msg) })

	email, err := o.WriteEmail("jane@acme.com", "Hello", "Hi.", nil)
	if err != nil {
		t.Fatal(err)
	}
	call, err := o.WriteCallRequest(models.CallRequest{
		Metadata: models.CallMetadata{LeadEmail: "jane@acme.com"},
	})
	if err != nil {
		t.Fatal(err)
	}
	prop, err := o.WriteProposal("Acme", "# Proposal\n")
	if err != nil {
		t.Fatal(err)
	}

	lines := o.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected a log line per artifact write, got %d: %v", len(lines), lines)
	}
	wants := []string{
		fmt.Sprintf("Email saved: %s -> jane@acme.com", email.Name),
		fmt.Sprintf("Simulated call created: %s", call.Name),
		fmt.Sprintf("Proposal saved: %s", prop.Name),
	}
	for i, want := range wants {
		if !strings.HasSuffix(lines[i], "| "+want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
	if len(hooked) != 3 {
		t.Errorf("hook not invoked per write: %v", hooked)
	}
}

func TestNotifyAppendsAndTails(t *testing.T) {
	o := newTestOutbox(t)

	var hooked []string
	o.SetNotifyHook(func(msg string) { hooked = append(hooked, msg) })

	o.Notify("first")
	o.Notify("second")
	o.Notify("third")

	if len(hooked) != 3 || hooked[2] != "third" {
		t.Errorf("hook not invoked per notification: %v", hooked)
	}

	lines := o.Tail(2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 tail lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "| second") || !strings.HasSuffix(lines[1], "| third") {
		t.Errorf("unexpected tail: %v", lines)
	}
	if !strings.Contains(lines[1], " | ") {
		t.Errorf("expected timestamp separator in %q", lines[1])
	}
}

func TestTailMissingLog(t *testing.T) {
	o := New(t.TempDir())
	if lines := o.Tail(5); lines != nil {
		t.Errorf("expected nil for missing log, got %v", lines)
	}
}

func TestListNewestFirst(t *testing.T) {
	o := newTestOutbox(t)

	if _, err := o.WriteProposal("Alpha", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.WriteProposal("Zulu", "z"); err != nil {
		t.Fatal(err)
	}

	arts, err := o.List(models.ArtifactProposal)
	if err != nil {
		t.Fatal(err)
	}
	if len(arts) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(arts))
	}
	// Same timestamp second is possible; lexical descending still holds.
	if arts[0].Name < arts[1].Name {
		t.Errorf("expected newest-first order: %v", arts)
	}
}

func TestListEmptyKindDir(t *testing.T) {
	o := New(t.TempDir())
	arts, err := o.List(models.ArtifactEmail)
	if err != nil {
		t.Fatal(err)
	}
	if arts != nil {
		t.Errorf("expected no artifacts, got %v", arts)
	}
}
