package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/leadline-io/leadline/internal/models"
)

// LeadList is the lead list component for the left panel, grouped by
// status.
type LeadList struct {
	leads        []models.Lead
	flatItems    []leadItem
	cursor       int
	scrollOffset int
	height       int
}

type leadItem struct {
	lead      *models.Lead
	isHeader  bool
	headerStr string
}

// Sections in display order.
var leadSections = []models.LeadStatus{
	models.StatusNew,
	models.StatusUpdated,
	models.StatusQualified,
	models.StatusProposalSent,
	models.StatusNoAnswer,
	models.StatusUnqualified,
}

// NewLeadList creates a new lead list.
func NewLeadList() *LeadList {
	return &LeadList{}
}

// SetLeads updates the list data and rebuilds the flat item list.
func (ll *LeadList) SetLeads(leads []models.Lead) {
	ll.leads = leads
	ll.rebuild()
	if ll.cursor >= len(ll.flatItems) {
		ll.cursor = len(ll.flatItems) - 1
	}
	if ll.cursor < 0 {
		ll.cursor = 0
	}
	ll.skipHeaders(1)
}

// SetHeight sets the visible height.
func (ll *LeadList) SetHeight(h int) {
	ll.height = h
}

// SelectedLead returns the currently selected lead, or nil.
func (ll *LeadList) SelectedLead() *models.Lead {
	if ll.cursor < 0 || ll.cursor >= len(ll.flatItems) {
		return nil
	}
	item := ll.flatItems[ll.cursor]
	if item.isHeader {
		return nil
	}
	return item.lead
}

// MoveUp moves the cursor up, skipping headers.
func (ll *LeadList) MoveUp() {
	if len(ll.flatItems) == 0 {
		return
	}
	ll.cursor--
	if ll.cursor < 0 {
		ll.cursor = 0
	}
	ll.skipHeaders(-1)
	ll.ensureVisible()
}

// MoveDown moves the cursor down, skipping headers.
func (ll *LeadList) MoveDown() {
	if len(ll.flatItems) == 0 {
		return
	}
	ll.cursor++
	if ll.cursor >= len(ll.flatItems) {
		ll.cursor = len(ll.flatItems) - 1
	}
	ll.skipHeaders(1)
	ll.ensureVisible()
}

func (ll *LeadList) skipHeaders(direction int) {
	for ll.cursor >= 0 && ll.cursor < len(ll.flatItems) && ll.flatItems[ll.cursor].isHeader {
		ll.cursor += direction
	}
	if ll.cursor < 0 {
		ll.cursor = 0
		for ll.cursor < len(ll.flatItems) && ll.flatItems[ll.cursor].isHeader {
			ll.cursor++
		}
	}
	if ll.cursor >= len(ll.flatItems) {
		ll.cursor = len(ll.flatItems) - 1
		for ll.cursor >= 0 && ll.flatItems[ll.cursor].isHeader {
			ll.cursor--
		}
	}
}

func (ll *LeadList) ensureVisible() {
	if ll.cursor < ll.scrollOffset {
		ll.scrollOffset = ll.cursor
	}
	if ll.cursor >= ll.scrollOffset+ll.height {
		ll.scrollOffset = ll.cursor - ll.height + 1
	}
}

func (ll *LeadList) rebuild() {
	var items []leadItem

	groups := make(map[models.LeadStatus][]*models.Lead)
	for i := range ll.leads {
		lead := &ll.leads[i]
		groups[lead.Status] = append(groups[lead.Status], lead)
	}

	for _, status := range leadSections {
		g := groups[status]
		if len(g) == 0 {
			continue
		}
		items = append(items, leadItem{
			isHeader:  true,
			headerStr: fmt.Sprintf("%s (%d)", status, len(g)),
		})
		for _, lead := range g {
			items = append(items, leadItem{lead: lead})
		}
	}

	ll.flatItems = items
}

func leadStyle(status models.LeadStatus) lipgloss.Style {
	switch status {
	case models.StatusNew:
		return leadNewStyle
	case models.StatusUpdated:
		return leadUpdatedStyle
	case models.StatusQualified:
		return leadQualifiedStyle
	case models.StatusProposalSent:
		return leadProposalSentStyle
	case models.StatusNoAnswer:
		return leadNoAnswerStyle
	default:
		return leadUnqualifiedStyle
	}
}

// View renders the lead list.
func (ll *LeadList) View(width int) string {
	if len(ll.flatItems) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No leads. Press 'a' to add one or 'i' to import a CSV.")
	}

	var lines []string
	end := ll.scrollOffset + ll.height
	if end > len(ll.flatItems) {
		end = len(ll.flatItems)
	}

	for i := ll.scrollOffset; i < end; i++ {
		item := ll.flatItems[i]

		if item.isHeader {
			line := sectionHeaderStyle.Render(item.headerStr)
			if i > 0 {
				line = "\n" + line
			}
			lines = append(lines, line)
			continue
		}

		lead := item.lead
		name := lead.Name
		if name == "" {
			name = "(unnamed)"
		}
		row := fmt.Sprintf("%s  %s  $%.0f", name, lead.Email, lead.Budget)

		maxWidth := width - 2
		if maxWidth > 0 {
			row = ansi.Truncate(row, maxWidth, "…")
		}

		line := leadStyle(lead.Status).Render(row)
		if i == ll.cursor {
			line = selectedItemStyle.Width(width).Render(row)
		}
		lines = append(lines, "  "+line)
	}

	// Scroll indicators
	if ll.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(ll.flatItems) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}
