package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/leadline-io/leadline/internal/models"
)

// Settings field indexes.
const (
	settingFieldModel = iota
	settingFieldBaseURL
	settingFieldThreshold
	settingFieldTimeout
	settingFieldAutoQualify
	settingFieldCount
)

var settingsFieldLabels = [settingFieldCount]string{
	"Ollama model",
	"Ollama base URL",
	"Qualification threshold",
	"Generate timeout",
	"Auto-qualify on import",
}

// SettingsForm edits the session settings in the left panel. Changes apply
// to the running session; 's' persists them as startup defaults.
type SettingsForm struct {
	settings models.Settings
	cursor   int
	editing  bool
	input    textinput.Model
	width    int
	height   int
}

// NewSettingsForm creates the settings form.
func NewSettingsForm() *SettingsForm {
	ti := textinput.New()
	ti.CharLimit = 200
	return &SettingsForm{input: ti}
}

// SetSize updates dimensions.
func (sf *SettingsForm) SetSize(width, height int) {
	sf.width = width
	sf.height = height
	sf.input.Width = width - 28
}

// Load replaces the form state with the given settings.
func (sf *SettingsForm) Load(s models.Settings) {
	sf.settings = s
}

// Settings returns the current form values.
func (sf *SettingsForm) Settings() models.Settings {
	return sf.settings
}

// IsEditing reports whether a text field is being edited.
func (sf *SettingsForm) IsEditing() bool {
	return sf.editing
}

// InputModel returns the edit input for update forwarding.
func (sf *SettingsForm) InputModel() *textinput.Model {
	return &sf.input
}

// MoveUp moves the cursor up.
func (sf *SettingsForm) MoveUp() {
	if sf.cursor > 0 {
		sf.cursor--
	}
}

// MoveDown moves the cursor down.
func (sf *SettingsForm) MoveDown() {
	if sf.cursor < settingFieldCount-1 {
		sf.cursor++
	}
}

// StartEdit begins editing the selected field. Returns false for the
// toggle field.
func (sf *SettingsForm) StartEdit() bool {
	var value string
	switch sf.cursor {
	case settingFieldModel:
		value = sf.settings.Model
	case settingFieldBaseURL:
		value = sf.settings.BaseURL
	case settingFieldThreshold:
		value = strconv.FormatFloat(sf.settings.Threshold, 'f', -1, 64)
	case settingFieldTimeout:
		value = sf.settings.GenerateTimeout.String()
	default:
		return false
	}
	sf.editing = true
	sf.input.SetValue(value)
	sf.input.CursorEnd()
	sf.input.Focus()
	return true
}

// CancelEdit abandons the edit.
func (sf *SettingsForm) CancelEdit() {
	sf.editing = false
	sf.input.Blur()
}

// FinishEdit parses the edited value into the settings. It reports whether
// anything changed, and fails without losing edit focus on a bad value.
func (sf *SettingsForm) FinishEdit() (bool, error) {
	value := strings.TrimSpace(sf.input.Value())

	switch sf.cursor {
	case settingFieldModel:
		if value == "" {
			return false, fmt.Errorf("model cannot be empty")
		}
		if value == sf.settings.Model {
			break
		}
		sf.settings.Model = value
		sf.endEdit()
		return true, nil
	case settingFieldBaseURL:
		if value == "" {
			return false, fmt.Errorf("base URL cannot be empty")
		}
		if value == sf.settings.BaseURL {
			break
		}
		sf.settings.BaseURL = value
		sf.endEdit()
		return true, nil
	case settingFieldThreshold:
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil || threshold < 0 {
			return false, fmt.Errorf("invalid threshold: %s", value)
		}
		if threshold == sf.settings.Threshold {
			break
		}
		sf.settings.Threshold = threshold
		sf.endEdit()
		return true, nil
	case settingFieldTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return false, fmt.Errorf("invalid timeout: %s", value)
		}
		if d == sf.settings.GenerateTimeout {
			break
		}
		sf.settings.GenerateTimeout = d
		sf.endEdit()
		return true, nil
	}

	sf.endEdit()
	return false, nil
}

func (sf *SettingsForm) endEdit() {
	sf.editing = false
	sf.input.Blur()
}

// Toggle flips the selected boolean field. Returns false when the cursor is
// on a text field.
func (sf *SettingsForm) Toggle() bool {
	if sf.cursor != settingFieldAutoQualify {
		return false
	}
	sf.settings.AutoQualifyOnImport = !sf.settings.AutoQualifyOnImport
	return true
}

func (sf *SettingsForm) fieldValue(i int) string {
	switch i {
	case settingFieldModel:
		return settingsValueStyle.Render(sf.settings.Model)
	case settingFieldBaseURL:
		return settingsValueStyle.Render(sf.settings.BaseURL)
	case settingFieldThreshold:
		return settingsValueStyle.Render(fmt.Sprintf("$%.0f", sf.settings.Threshold))
	case settingFieldTimeout:
		return settingsValueStyle.Render(sf.settings.GenerateTimeout.String())
	case settingFieldAutoQualify:
		if sf.settings.AutoQualifyOnImport {
			return settingsToggleOn.Render("on")
		}
		return settingsToggleOff.Render("off")
	}
	return ""
}

// View renders the settings form.
func (sf *SettingsForm) View() string {
	var lines []string
	for i := 0; i < settingFieldCount; i++ {
		label := settingsLabelStyle.Render(settingsFieldLabels[i])

		var value string
		if sf.editing && i == sf.cursor {
			value = sf.input.View()
		} else {
			value = sf.fieldValue(i)
		}

		line := label + " " + value
		if i == sf.cursor && !sf.editing {
			line = settingsCursorStyle.Render(settingsFieldLabels[i]) +
				strings.Repeat(" ", max(1, 25-len(settingsFieldLabels[i]))) + sf.fieldValue(i)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "",
		hintStyle.Render("Changes apply to this session."),
		hintStyle.Render("Press 's' to save them as startup defaults."))

	return strings.Join(lines, "\n")
}
