package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/leadline-io/leadline/internal/models"
)

// Outbox kinds in the order the browser cycles through them.
var outboxKinds = []models.ArtifactKind{
	models.ArtifactEmail,
	models.ArtifactCallRequest,
	models.ArtifactProposal,
}

var outboxKindTitles = map[models.ArtifactKind]string{
	models.ArtifactEmail:       "Emails",
	models.ArtifactCallRequest: "Call Requests",
	models.ArtifactProposal:    "Proposals",
}

// OutboxView browses outbox artifacts with list and detail views.
type OutboxView struct {
	kindIndex     int
	artifacts     []models.Artifact
	selectedIndex int
	scrollOffset  int
	viewing       bool
	viewport      viewport.Model
	viewName      string
	width         int
	height        int
}

// NewOutboxView creates the outbox browser.
func NewOutboxView() *OutboxView {
	return &OutboxView{viewport: viewport.New(80, 24)}
}

// SetSize updates dimensions.
func (ov *OutboxView) SetSize(width, height int) {
	ov.width = width
	ov.height = height
	ov.viewport.Width = width
	ov.viewport.Height = max(height-2, 1)
}

// Kind returns the kind currently shown.
func (ov *OutboxView) Kind() models.ArtifactKind {
	return outboxKinds[ov.kindIndex]
}

// SetArtifacts replaces the listing for a kind. Listings for other kinds
// are ignored so a stale load cannot clobber the view.
func (ov *OutboxView) SetArtifacts(kind models.ArtifactKind, artifacts []models.Artifact) {
	if kind != ov.Kind() {
		return
	}
	ov.artifacts = artifacts
	if ov.selectedIndex >= len(artifacts) {
		ov.selectedIndex = len(artifacts) - 1
	}
	if ov.selectedIndex < 0 {
		ov.selectedIndex = 0
	}
}

// SetContent switches to the detail view showing an artifact's content.
func (ov *OutboxView) SetContent(name, content string) {
	ov.viewName = name
	ov.viewing = true
	ov.viewport.SetContent(content)
	ov.viewport.GotoTop()
}

// IsViewing reports whether the detail view is active.
func (ov *OutboxView) IsViewing() bool {
	return ov.viewing
}

// GoBack returns from the detail view to the list.
func (ov *OutboxView) GoBack() {
	ov.viewing = false
}

// SelectedArtifact returns the highlighted artifact, or nil.
func (ov *OutboxView) SelectedArtifact() *models.Artifact {
	if ov.selectedIndex < 0 || ov.selectedIndex >= len(ov.artifacts) {
		return nil
	}
	return &ov.artifacts[ov.selectedIndex]
}

// CycleKind advances to the next artifact kind and resets the cursor. It
// returns the new kind so the caller can reload the listing.
func (ov *OutboxView) CycleKind(direction int) models.ArtifactKind {
	ov.kindIndex = (ov.kindIndex + direction + len(outboxKinds)) % len(outboxKinds)
	ov.artifacts = nil
	ov.selectedIndex = 0
	ov.scrollOffset = 0
	ov.viewing = false
	return ov.Kind()
}

// MoveUp moves the selection up, or scrolls the detail view.
func (ov *OutboxView) MoveUp() {
	if ov.viewing {
		ov.viewport.ScrollUp(1)
		return
	}
	if ov.selectedIndex > 0 {
		ov.selectedIndex--
	}
	ov.ensureVisible()
}

// MoveDown moves the selection down, or scrolls the detail view.
func (ov *OutboxView) MoveDown() {
	if ov.viewing {
		ov.viewport.ScrollDown(1)
		return
	}
	if ov.selectedIndex < len(ov.artifacts)-1 {
		ov.selectedIndex++
	}
	ov.ensureVisible()
}

// PageUp scrolls the detail view a page up.
func (ov *OutboxView) PageUp() {
	if ov.viewing {
		ov.viewport.HalfPageUp()
	}
}

// PageDown scrolls the detail view a page down.
func (ov *OutboxView) PageDown() {
	if ov.viewing {
		ov.viewport.HalfPageDown()
	}
}

func (ov *OutboxView) ensureVisible() {
	listHeight := max(ov.height-2, 1)
	if ov.selectedIndex < ov.scrollOffset {
		ov.scrollOffset = ov.selectedIndex
	}
	if ov.selectedIndex >= ov.scrollOffset+listHeight {
		ov.scrollOffset = ov.selectedIndex - listHeight + 1
	}
}

// View renders the outbox browser.
func (ov *OutboxView) View() string {
	var tabs []string
	for i, kind := range outboxKinds {
		title := outboxKindTitles[kind]
		if i == ov.kindIndex {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	header := strings.Join(tabs, tabSepStyle.Render(" | "))

	if ov.viewing {
		title := lipgloss.NewStyle().Bold(true).Render(ov.viewName)
		return header + "\n" + title + "\n" + ov.viewport.View()
	}

	if len(ov.artifacts) == 0 {
		return header + "\n\n" + lipgloss.NewStyle().Foreground(colorDim).Render("Outbox is empty.")
	}

	var lines []string
	listHeight := max(ov.height-2, 1)
	end := min(ov.scrollOffset+listHeight, len(ov.artifacts))
	for i := ov.scrollOffset; i < end; i++ {
		name := ansi.Truncate(ov.artifacts[i].Name, max(ov.width-2, 1), "…")
		if i == ov.selectedIndex {
			lines = append(lines, selectedItemStyle.Width(ov.width).Render(name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	if end < len(ov.artifacts) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render(fmt.Sprintf("  ▼ %d more", len(ov.artifacts)-end)))
	}

	return header + "\n\n" + strings.Join(lines, "\n")
}
