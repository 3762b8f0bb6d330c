package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-io/leadline/internal/lifecycle"
)

// WebhookForm simulates an incoming call event for a lead: pick the event
// type and paste the transcript.
type WebhookForm struct {
	email      string
	eventIndex int
	transcript textarea.Model
	focusIndex int // 0=event type, 1=transcript
	width      int
}

// NewWebhookForm creates the webhook overlay for a lead.
func NewWebhookForm(email string, width int) *WebhookForm {
	ta := textarea.New()
	ta.Placeholder = "Great chat. Please send a proposal."
	ta.SetWidth(width - 8)
	ta.SetHeight(6)

	return &WebhookForm{
		email:      email,
		transcript: ta,
		width:      width,
	}
}

// Email returns the target lead email.
func (wf *WebhookForm) Email() string {
	return wf.email
}

// EventType returns the selected event type.
func (wf *WebhookForm) EventType() string {
	return lifecycle.EventTypes[wf.eventIndex]
}

// Transcript returns the transcript text.
func (wf *WebhookForm) Transcript() string {
	return wf.transcript.Value()
}

// CycleEvent advances the event type selection.
func (wf *WebhookForm) CycleEvent() {
	wf.eventIndex = (wf.eventIndex + 1) % len(lifecycle.EventTypes)
}

// FocusNext toggles between the event selector and the transcript.
func (wf *WebhookForm) FocusNext() {
	if wf.focusIndex == 0 {
		wf.focusIndex = 1
		wf.transcript.Focus()
	} else {
		wf.focusIndex = 0
		wf.transcript.Blur()
	}
}

// FocusIndex returns the focused field index.
func (wf *WebhookForm) FocusIndex() int {
	return wf.focusIndex
}

// TranscriptArea returns the textarea model for update forwarding.
func (wf *WebhookForm) TranscriptArea() *textarea.Model {
	return &wf.transcript
}

// View renders the webhook form.
func (wf *WebhookForm) View() string {
	formWidth := wf.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := make([]string, 0, 10)
	parts = append(parts, overlayTitleStyle.Render("Simulate Webhook — "+wf.email))

	label := lipgloss.NewStyle().Bold(true).Render("Event type:")
	event := settingsValueStyle.Render(wf.EventType())
	if wf.focusIndex == 0 {
		event = settingsCursorStyle.Render(wf.EventType()) +
			lipgloss.NewStyle().Foreground(colorDim).Render("  (Space/Enter to cycle)")
	}
	parts = append(parts, label+" "+event, "")

	label = lipgloss.NewStyle().Bold(true).Render("Transcript:")
	parts = append(parts, label, wf.transcript.View(), "")

	footer := lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s send  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
