// Package outbox writes every outbound artifact — emails, call requests,
// proposals — as plain files under the workspace, and keeps the
// notifications log. Nothing here talks to a network.
package outbox

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/leadline-io/leadline/internal/config"
	"github.com/leadline-io/leadline/internal/models"
)

// NotifyHook receives each notification line as it is logged. The TUI uses
// this to surface toasts without tailing the log file.
type NotifyHook func(message string)

// Outbox writes outbound artifacts into a workspace. Every artifact write
// appends a notification line, so the log is a complete audit trail.
type Outbox struct {
	workspace string
	hook      NotifyHook
}

// New creates an outbox rooted at workspace.
func New(workspace string) *Outbox {
	return &Outbox{workspace: workspace}
}

// SetNotifyHook registers a hook invoked for every Notify call.
func (o *Outbox) SetNotifyHook(hook NotifyHook) {
	o.hook = hook
}

// timestamp returns the compact stamp embedded in artifact filenames.
func timestamp(now time.Time) string {
	return now.UTC().Format("20060102_150405")
}

// slugMaxLen caps slug length so long subjects cannot blow the filename
// past filesystem limits.
const slugMaxLen = 80

// Slug reduces s to a filename-safe token: alphanumerics, dashes and
// underscores survive, spaces become underscores, everything else is
// dropped. The result is capped at slugMaxLen characters; an empty result
// falls back to "item".
func Slug(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "item"
	}
	out := b.String()
	if len(out) > slugMaxLen {
		out = out[:slugMaxLen]
	}
	return out
}

// WriteEmail renders an email as Markdown under outbox/emails/ and returns
// the artifact. Attachments are listed by reference, not embedded.
func (o *Outbox) WriteEmail(to, subject, body string, attachments []models.Attachment) (models.Artifact, error) {
	name := fmt.Sprintf("%s__%s__%s.md", timestamp(time.Now()), Slug(to), Slug(subject))
	path := filepath.Join(config.EmailsDir(o.workspace), name)

	var b strings.Builder
	fmt.Fprintf(&b, "# To: %s\n", to)
	fmt.Fprintf(&b, "# Subject: %s\n\n", subject)
	b.WriteString(body)
	b.WriteString("\n")
	if len(attachments) > 0 {
		b.WriteString("\n## Attachments\n")
		for _, a := range attachments {
			fmt.Fprintf(&b, "- %s -> %s\n", a.Filename, a.Path)
		}
	}

	if err := config.WriteFileAtomic(path, []byte(b.String())); err != nil {
		return models.Artifact{}, fmt.Errorf("write email: %w", err)
	}
	o.Notify(fmt.Sprintf("Email saved: %s -> %s", name, to))
	return models.Artifact{Kind: models.ArtifactEmail, Name: name, Path: path}, nil
}

// WriteCallRequest serializes a call request as indented JSON under
// outbox/call_requests/.
func (o *Outbox) WriteCallRequest(req models.CallRequest) (models.Artifact, error) {
	email := Slug(req.Metadata.LeadEmail)
	name := fmt.Sprintf("call_%s_%s.json", email, timestamp(time.Now()))
	path := filepath.Join(config.CallRequestsDir(o.workspace), name)

	data, err := req.MarshalIndent()
	if err != nil {
		return models.Artifact{}, fmt.Errorf("encode call request: %w", err)
	}
	if err := config.WriteFileAtomic(path, data); err != nil {
		return models.Artifact{}, fmt.Errorf("write call request: %w", err)
	}
	o.Notify(fmt.Sprintf("Simulated call created: %s", name))
	return models.Artifact{Kind: models.ArtifactCallRequest, Name: name, Path: path}, nil
}

// WriteProposal saves a generated proposal under proposals/ and returns the
// artifact. The filename is derived from the company so a lead's proposals
// group together in listings.
func (o *Outbox) WriteProposal(company, content string) (models.Artifact, error) {
	name := fmt.Sprintf("%s_%s.md", Slug(company), timestamp(time.Now()))
	path := filepath.Join(config.ProposalsDir(o.workspace), name)

	if err := config.WriteFileAtomic(path, []byte(content)); err != nil {
		return models.Artifact{}, fmt.Errorf("write proposal: %w", err)
	}
	o.Notify(fmt.Sprintf("Proposal saved: %s", name))
	return models.Artifact{Kind: models.ArtifactProposal, Name: name, Path: path}, nil
}

// Notify appends a timestamped line to the notifications log and invokes
// the hook if one is registered. Logging failures are swallowed so a full
// disk never blocks a lead operation.
func (o *Outbox) Notify(message string) {
	line := fmt.Sprintf("%s | %s\n", time.Now().UTC().Format(time.RFC3339), message)
	path := config.NotificationsLog(o.workspace)
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		f.WriteString(line)
		f.Close()
	}
	if o.hook != nil {
		o.hook(message)
	}
}

// kindDir maps an artifact kind to its directory.
func (o *Outbox) kindDir(kind models.ArtifactKind) (string, error) {
	switch kind {
	case models.ArtifactEmail:
		return config.EmailsDir(o.workspace), nil
	case models.ArtifactCallRequest:
		return config.CallRequestsDir(o.workspace), nil
	case models.ArtifactProposal:
		return config.ProposalsDir(o.workspace), nil
	default:
		return "", fmt.Errorf("unknown artifact kind %q", kind)
	}
}

// List returns the artifacts of a kind, newest first by filename. The
// timestamp prefix or suffix in every filename makes lexical order match
// chronological order within a kind.
func (o *Outbox) List(kind models.ArtifactKind) ([]models.Artifact, error) {
	dir, err := o.kindDir(kind)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s artifacts: %w", kind, err)
	}

	var artifacts []models.Artifact
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		artifacts = append(artifacts, models.Artifact{
			Kind: kind,
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name > artifacts[j].Name
	})
	return artifacts, nil
}

// Read returns the content of a named artifact. The name is cleaned to its
// base so callers cannot escape the artifact directory.
func (o *Outbox) Read(kind models.ArtifactKind, name string) (string, error) {
	dir, err := o.kindDir(kind)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Base(name))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read artifact %s: %w", name, err)
	}
	return string(data), nil
}

// Tail returns the last n lines of the notifications log, oldest first.
// A missing log yields no lines.
func (o *Outbox) Tail(n int) []string {
	data, err := os.ReadFile(config.NotificationsLog(o.workspace))
	if err != nil {
		return nil
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
