package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-io/leadline/internal/models"
)

func renderHeader(leads []models.Lead, leftTab, rightTab, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Leadline")

	leftTabs := renderTabs([]string{"Leads", "Settings"}, leftTab)
	rightTabs := renderTabs([]string{"Outbox", "Activity"}, rightTab)

	badge := renderPipelineBadge(leads)

	left := fmt.Sprintf(" %s %s  %s", dot, name, leftTabs)
	right := fmt.Sprintf("%s  %s ", rightTabs, badge)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

// renderPipelineBadge summarizes the lead pipeline in the header corner.
func renderPipelineBadge(leads []models.Lead) string {
	if len(leads) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("no leads")
	}

	pending, qualified, sent := 0, 0, 0
	for _, lead := range leads {
		switch lead.Status {
		case models.StatusNew, models.StatusUpdated:
			pending++
		case models.StatusQualified:
			qualified++
		case models.StatusProposalSent:
			sent++
		}
	}

	parts := []string{
		lipgloss.NewStyle().Foreground(colorCyan).Render(fmt.Sprintf("%d pending", pending)),
		lipgloss.NewStyle().Foreground(colorGreen).Render(fmt.Sprintf("%d qualified", qualified)),
		lipgloss.NewStyle().Bold(true).Foreground(colorGreen).Render(fmt.Sprintf("%d sent", sent)),
	}
	return strings.Join(parts, tabSepStyle.Render(" · "))
}
