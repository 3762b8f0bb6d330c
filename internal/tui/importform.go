package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// ImportForm asks for the path of a CSV file to import.
type ImportForm struct {
	pathInput textinput.Model
	width     int
}

// NewImportForm creates the import overlay.
func NewImportForm(width int) *ImportForm {
	ti := textinput.New()
	ti.Placeholder = "leads.csv"
	ti.CharLimit = 500
	ti.Width = width - 8
	ti.Focus()

	return &ImportForm{pathInput: ti, width: width}
}

// Path returns the entered file path.
func (f *ImportForm) Path() string {
	return strings.TrimSpace(f.pathInput.Value())
}

// Input returns the path input model for update forwarding.
func (f *ImportForm) Input() *textinput.Model {
	return &f.pathInput
}

// View renders the import form.
func (f *ImportForm) View() string {
	formWidth := f.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := []string{
		overlayTitleStyle.Render("Import Leads from CSV"),
		lipgloss.NewStyle().Bold(true).Render("File path:"),
		f.pathInput.View(),
		"",
		lipgloss.NewStyle().Foreground(colorDim).Render("Headers: Name, Email, Company, UseCase, Budget, Phone"),
		"",
		lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s import  |  Esc cancel"),
	}

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
