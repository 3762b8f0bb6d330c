// Package proposal drafts automation proposals for qualified leads, backed
// by a local Ollama model with a deterministic Markdown template as the
// fallback when no model is reachable.
package proposal

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadline-io/leadline/internal/models"
)

// Notifier receives one-line status messages, e.g. about falling back to
// the template.
type Notifier interface {
	Notify(message string)
}

// Generator drafts proposals. A nil text generator always yields the
// template.
type Generator struct {
	text     TextGenerator
	notifier Notifier
}

// NewGenerator creates a generator. text may be nil; notifier may be nil.
func NewGenerator(text TextGenerator, notifier Notifier) *Generator {
	return &Generator{text: text, notifier: notifier}
}

// Generate returns a Markdown proposal for the lead. It never fails: when
// the model call errs, the error is surfaced as a notification and the
// template takes over.
func (g *Generator) Generate(ctx context.Context, lead models.Lead) string {
	if g.text != nil {
		text, err := g.text.Generate(ctx, Prompt(lead))
		if err == nil {
			return text
		}
		if g.notifier != nil {
			g.notifier.Notify(fmt.Sprintf("LLM unavailable, using template: %v", err))
		}
	}
	return Template(lead)
}

// company and name fall back to placeholders so a sparse lead still
// produces a readable document.
func companyOr(lead models.Lead) string {
	if lead.Company == "" {
		return "(Company)"
	}
	return lead.Company
}

func nameOr(lead models.Lead) string {
	if lead.Name == "" {
		return "(Name)"
	}
	return lead.Name
}

// Prompt builds the instruction sent to the model.
func Prompt(lead models.Lead) string {
	var b strings.Builder
	b.WriteString("You are a sales solutions architect who drafts concise, tailored automation proposals.\n\n")
	fmt.Fprintf(&b, "Draft a crisp proposal (<= 2 pages) for %s based on this lead:\n\n", companyOr(lead))
	fmt.Fprintf(&b, "- Prospect: %s\n", nameOr(lead))
	fmt.Fprintf(&b, "- Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "- Use case: %s\n", lead.EffectiveUseCase())
	fmt.Fprintf(&b, "- Budget: $%v\n\n", lead.Budget)
	b.WriteString("Structure:\n")
	b.WriteString("1) Problem summary\n")
	b.WriteString("2) Proposed automation solution (people, process, tech)\n")
	b.WriteString("3) Architecture (bullet points)\n")
	b.WriteString("4) Timeline & milestones\n")
	b.WriteString("5) Pricing in the stated budget\n")
	b.WriteString("6) Next steps (CTA).\n")
	return b.String()
}

// Template renders the deterministic fallback proposal.
func Template(lead models.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Automation Proposal — %s\n\n", companyOr(lead))
	fmt.Fprintf(&b, "**Prospect:** %s  \n", lead.Name)
	fmt.Fprintf(&b, "**Email:** %s  \n", lead.Email)
	fmt.Fprintf(&b, "**Use case:** %s  \n\n", lead.EffectiveUseCase())
	b.WriteString("## 1) Problem summary\nDescribe the current pain points and desired outcomes.\n\n")
	b.WriteString("## 2) Proposed automation solution\n- People: roles and responsibilities\n- Process: key steps and governance\n- Tech: LLM + orchestration + integrations (swappable)\n\n")
	b.WriteString("## 3) Architecture (bullets)\n- Data intake -> Processing -> LLM -> Output\n- Observability & logging\n- Security & access\n\n")
	b.WriteString("## 4) Timeline & milestones\n- Week 1–2: Discovery & design\n- Week 3–4: MVP build\n- Week 5–6: Pilot & iteration\n\n")
	b.WriteString("## 5) Pricing\n- Fixed fee within stated budget with clear deliverables.\n\n")
	b.WriteString("## 6) Next steps\n- Reply to confirm and schedule a working session.\n")
	return b.String()
}
