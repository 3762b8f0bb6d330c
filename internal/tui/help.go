package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit"},
			{"Ctrl+h / ?", "Toggle help"},
			{"Tab", "Switch panel focus"},
			{"1/2", "Switch left panel tab"},
		},
	},
	{
		title: "Leads",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate leads"},
			{"a", "Add new lead"},
			{"e / Enter", "Edit lead"},
			{"q", "Qualify selected lead"},
			{"Q", "Qualify all pending leads"},
			{"c", "Trigger simulated call"},
			{"p", "Send proposal (confirms)"},
			{"w", "Simulate webhook event"},
			{"i", "Import leads from CSV"},
			{"r", "Reload from disk"},
		},
	},
	{
		title: "Settings",
		keys: []helpKey{
			{"j/k", "Navigate fields"},
			{"Enter", "Edit text field"},
			{"Space", "Toggle boolean"},
			{"s", "Save as startup defaults"},
		},
	},
	{
		title: "Outbox",
		keys: []helpKey{
			{"h/l ←/→", "Switch artifact kind"},
			{"j/k ↑/↓", "Navigate artifacts"},
			{"Enter", "View content"},
			{"Esc", "Back to list"},
			{"PgUp/PgDn", "Scroll content"},
		},
	},
	{
		title: "Activity",
		keys: []helpKey{
			{"j/k ↑/↓", "Scroll the log"},
		},
	},
	{
		title: "Overlays",
		keys: []helpKey{
			{"Ctrl+s", "Save / send"},
			{"Esc", "Cancel / Close"},
			{"Tab", "Next field"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(14).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or Ctrl+h to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
