package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-io/leadline/internal/models"
)

// Lead form field indexes.
const (
	leadFieldName = iota
	leadFieldEmail
	leadFieldCompany
	leadFieldUseCase
	leadFieldBudget
	leadFieldPhone
	leadFieldNotes
	leadFieldCount
)

// LeadForm is the add/edit lead overlay form.
type LeadForm struct {
	mode       string // "add" or "edit"
	inputs     [leadFieldCount]textinput.Model
	focusIndex int
	width      int
}

var leadFormLabels = [leadFieldCount]string{
	"Name", "Email", "Company", "Use case", "Budget ($)", "Phone", "Notes",
}

// NewLeadForm creates a new lead form.
func NewLeadForm(mode string, width int) *LeadForm {
	lf := &LeadForm{mode: mode, width: width}
	placeholders := [leadFieldCount]string{
		"Jane Doe", "jane@acme.com", "Acme Corp", "What should be automated?",
		"10000", "+1 555 0100", "Anything worth remembering",
	}
	for i := range lf.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = width - 8
		lf.inputs[i] = ti
	}
	lf.inputs[leadFieldName].Focus()
	return lf
}

// PreFill fills the form with an existing lead for editing. The email field
// stays editable; saving under a new email creates a separate record.
func (lf *LeadForm) PreFill(lead models.Lead) {
	lf.inputs[leadFieldName].SetValue(lead.Name)
	lf.inputs[leadFieldEmail].SetValue(lead.Email)
	lf.inputs[leadFieldCompany].SetValue(lead.Company)
	lf.inputs[leadFieldUseCase].SetValue(lead.EffectiveUseCase())
	lf.inputs[leadFieldBudget].SetValue(strconv.FormatFloat(lead.Budget, 'f', -1, 64))
	lf.inputs[leadFieldPhone].SetValue(lead.Phone)
	lf.inputs[leadFieldNotes].SetValue(lead.Notes)
}

// FocusNext moves to the next field.
func (lf *LeadForm) FocusNext() {
	lf.inputs[lf.focusIndex].Blur()
	lf.focusIndex = (lf.focusIndex + 1) % leadFieldCount
	lf.inputs[lf.focusIndex].Focus()
}

// Input returns the focused input model for update forwarding.
func (lf *LeadForm) Input() *textinput.Model {
	return &lf.inputs[lf.focusIndex]
}

// Lead assembles the form values into a lead. Invalid budgets error rather
// than silently reading as zero; the fallback-to-zero rule is for imports.
func (lf *LeadForm) Lead() (models.Lead, error) {
	budget := 0.0
	if raw := strings.TrimSpace(lf.inputs[leadFieldBudget].Value()); raw != "" {
		var err error
		budget, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Lead{}, fmt.Errorf("invalid budget: %s", raw)
		}
	}
	return models.Lead{
		Name:    strings.TrimSpace(lf.inputs[leadFieldName].Value()),
		Email:   strings.TrimSpace(lf.inputs[leadFieldEmail].Value()),
		Company: strings.TrimSpace(lf.inputs[leadFieldCompany].Value()),
		UseCase: strings.TrimSpace(lf.inputs[leadFieldUseCase].Value()),
		Budget:  budget,
		Phone:   strings.TrimSpace(lf.inputs[leadFieldPhone].Value()),
		Notes:   strings.TrimSpace(lf.inputs[leadFieldNotes].Value()),
	}, nil
}

// View renders the lead form.
func (lf *LeadForm) View() string {
	title := "Add Lead"
	if lf.mode == "edit" {
		title = "Edit Lead"
	}

	formWidth := lf.width
	if formWidth > 70 {
		formWidth = 70
	}
	if formWidth < 30 {
		formWidth = 30
	}

	parts := make([]string, 0, leadFieldCount*3+2)
	parts = append(parts, overlayTitleStyle.Render(title))
	for i := range lf.inputs {
		label := lipgloss.NewStyle().Bold(true).Render(leadFormLabels[i] + ":")
		parts = append(parts, label, lf.inputs[i].View(), "")
	}

	footer := lipgloss.NewStyle().Foreground(colorDim).Render("Ctrl+s save  |  Tab next field  |  Esc cancel")
	parts = append(parts, footer)

	return overlayStyle.Width(formWidth).Render(strings.Join(parts, "\n"))
}
