package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ActivityView shows the tail of the notifications log.
type ActivityView struct {
	viewport viewport.Model
	lines    []string
	width    int
	height   int
}

// NewActivityView creates the activity tail view.
func NewActivityView() *ActivityView {
	return &ActivityView{viewport: viewport.New(80, 24)}
}

// SetSize updates dimensions.
func (av *ActivityView) SetSize(width, height int) {
	av.width = width
	av.height = height
	av.viewport.Width = width
	av.viewport.Height = height
	av.refresh()
}

// SetLines replaces the displayed log lines, keeping the view pinned to the
// newest entries.
func (av *ActivityView) SetLines(lines []string) {
	av.lines = lines
	av.refresh()
}

func (av *ActivityView) refresh() {
	var rendered []string
	for _, line := range av.lines {
		// Dim the timestamp column up to the separator.
		if idx := strings.Index(line, " | "); idx > 0 {
			rendered = append(rendered,
				lipgloss.NewStyle().Foreground(colorDim).Render(line[:idx])+" "+line[idx+3:])
		} else {
			rendered = append(rendered, line)
		}
	}
	av.viewport.SetContent(strings.Join(rendered, "\n"))
	av.viewport.GotoBottom()
}

// ScrollUp scrolls the view up.
func (av *ActivityView) ScrollUp(n int) {
	av.viewport.ScrollUp(n)
}

// ScrollDown scrolls the view down.
func (av *ActivityView) ScrollDown(n int) {
	av.viewport.ScrollDown(n)
}

// View renders the activity tail.
func (av *ActivityView) View() string {
	if len(av.lines) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No activity yet.")
	}
	return av.viewport.View()
}
