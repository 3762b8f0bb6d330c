package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone    = 0
	confirmPropose = 1
	confirmQuit    = 2
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmPropose {
		return renderConfirmBar(
			fmt.Sprintf("Send proposal to %s? (y/n)", m.confirmEmail),
			width,
		)
	}
	if m.confirmMode == confirmQuit {
		return renderConfirmBar("Quit? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	if m.toast != "" {
		return renderToastBar(m.toast, width)
	}

	hints := getKeyHints(m)
	left := " " + hints

	right := lipgloss.NewStyle().Foreground(colorDim).Render(m.app.Workspace()) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay != overlayNone {
		return keyHint("Ctrl+s", "save") + "  " + keyHint("Esc", "cancel")
	}

	base := keyHint("Ctrl+q", "quit") + "  " + keyHint("Ctrl+h", "help") + "  " + keyHint("Tab", "switch")

	if m.focusedPanel == 0 {
		switch m.leftTab {
		case 0: // Leads
			return base + "  " + keyHint("a", "add") + "  " + keyHint("e", "edit") + "  " +
				keyHint("q", "qualify") + "  " + keyHint("Q", "qualify all") + "  " +
				keyHint("c", "call") + "  " + keyHint("p", "propose") + "  " +
				keyHint("w", "webhook") + "  " + keyHint("i", "import")
		case 1: // Settings
			return base + "  " + keyHint("j/k", "navigate") + "  " +
				keyHint("Enter", "edit") + "  " + keyHint("Space", "toggle") + "  " +
				keyHint("s", "save")
		}
	} else {
		switch m.rightTab {
		case 0: // Outbox
			return base + "  " + keyHint("h/l", "kind") + "  " +
				keyHint("Enter", "view") + "  " + keyHint("Esc", "back")
		case 1: // Activity
			return base + "  " + keyHint("j/k", "scroll")
		}
	}

	return base
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderToastBar(msg string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(msg))
}
