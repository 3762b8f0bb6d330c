package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadline-io/leadline/internal/app"
	"github.com/leadline-io/leadline/internal/config"
	"github.com/leadline-io/leadline/internal/models"
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	app *app.App

	// Lead data
	leads []models.Lead

	// UI state
	leftTab       int     // 0=Leads, 1=Settings
	rightTab      int     // 0=Outbox, 1=Activity
	focusedPanel  int     // 0=left, 1=right
	activeOverlay int     // overlayNone, overlayHelp, overlayAddLead, ...
	splitRatio    float64 // Default 0.45
	width         int
	height        int

	// Confirm mode
	confirmMode  int
	confirmEmail string

	// Status display
	err   error
	toast string

	// Child components
	leadList     *LeadList
	settingsForm *SettingsForm
	outboxView   *OutboxView
	activityView *ActivityView
	leadForm     *LeadForm
	webhookForm  *WebhookForm
	importForm   *ImportForm

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial TUI model.
func NewModel(a *app.App, program *programRef) Model {
	sf := NewSettingsForm()
	sf.Load(*a.Settings())

	return Model{
		app:          a,
		splitRatio:   0.45,
		leadList:     NewLeadList(),
		settingsForm: sf,
		outboxView:   NewOutboxView(),
		activityView: NewActivityView(),
		program:      program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadLeadsCmd(m.app),
		loadArtifactsCmd(m.app, m.outboxView.Kind()),
		loadActivityCmd(m.app),
	)
}

// refreshCmds reloads everything that may have changed after an operation.
func (m *Model) refreshCmds() tea.Cmd {
	return tea.Batch(
		loadLeadsCmd(m.app),
		loadArtifactsCmd(m.app, m.outboxView.Kind()),
		loadActivityCmd(m.app),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	// ── Lead data ──────────────────────────────────────────────────
	case LeadsLoadedMsg:
		m.leads = msg.Leads
		m.leadList.SetLeads(msg.Leads)
		return m, nil

	case LeadSavedMsg:
		m.activeOverlay = overlayNone
		m.leadForm = nil
		m.toast = "Lead saved"
		cmds = append(cmds, loadLeadsCmd(m.app), clearToastAfter(3*time.Second))
		return m, tea.Batch(cmds...)

	case ActionDoneMsg:
		m.toast = msg.Info
		cmds = append(cmds, m.refreshCmds(), clearToastAfter(4*time.Second))
		return m, tea.Batch(cmds...)

	case ImportDoneMsg:
		m.activeOverlay = overlayNone
		m.importForm = nil
		m.toast = fmt.Sprintf("Imported %d leads (%d skipped)", msg.Result.Imported, msg.Result.Skipped)
		cmds = append(cmds, m.refreshCmds(), clearToastAfter(4*time.Second))
		return m, tea.Batch(cmds...)

	// ── Outbox data ────────────────────────────────────────────────
	case ArtifactsLoadedMsg:
		m.outboxView.SetArtifacts(msg.Kind, msg.Artifacts)
		return m, nil

	case ArtifactContentMsg:
		m.outboxView.SetContent(msg.Artifact.Name, msg.Content)
		return m, nil

	case ActivityLoadedMsg:
		m.activityView.SetLines(msg.Lines)
		return m, nil

	case OutboxChangedMsg:
		cmds = append(cmds,
			loadArtifactsCmd(m.app, m.outboxView.Kind()),
			loadActivityCmd(m.app),
		)
		return m, tea.Batch(cmds...)

	// ── Notifications ──────────────────────────────────────────────
	case ToastMsg:
		m.toast = msg.Message
		cmds = append(cmds, loadActivityCmd(m.app), clearToastAfter(4*time.Second))
		return m, tea.Batch(cmds...)

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		cmds = append(cmds, clearErrorAfter(5*time.Second))
		return m, tea.Batch(cmds...)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearToastMsg:
		m.toast = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Overlay captures everything except global shortcuts
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	// Global shortcuts (always work)
	switch {
	case key.Matches(msg, globalKeys.Quit), msg.Type == tea.KeyCtrlC:
		return tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil

	case key.Matches(msg, globalKeys.Tab):
		m.focusedPanel = 1 - m.focusedPanel
		return nil
	}

	// Tab switching for the focused panel (not while editing settings)
	if !m.settingsForm.IsEditing() {
		switch {
		case key.Matches(msg, tabSwitchKeys.Tab1):
			if m.focusedPanel == 0 {
				m.leftTab = 0
			} else {
				m.rightTab = 0
			}
			return nil
		case key.Matches(msg, tabSwitchKeys.Tab2):
			if m.focusedPanel == 0 {
				m.leftTab = 1
				m.settingsForm.Load(*m.app.Settings())
			} else {
				m.rightTab = 1
				return loadActivityCmd(m.app)
			}
			return nil
		}
	}

	// Route to focused panel
	if m.focusedPanel == 0 {
		switch m.leftTab {
		case 0:
			return m.handleLeadListKey(msg)
		case 1:
			return m.handleSettingsKey(msg)
		}
		return nil
	}
	switch m.rightTab {
	case 0:
		return m.handleOutboxKey(msg)
	case 1:
		return m.handleActivityKey(msg)
	}
	return nil
}

func (m *Model) handleLeadListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, leadListKeys.Up):
		m.leadList.MoveUp()
	case key.Matches(msg, leadListKeys.Down):
		m.leadList.MoveDown()
	case key.Matches(msg, leadListKeys.Add):
		m.openLeadForm("add", nil)
	case key.Matches(msg, leadListKeys.Edit), key.Matches(msg, leadListKeys.Enter):
		if lead := m.leadList.SelectedLead(); lead != nil {
			m.openLeadForm("edit", lead)
		}
	case key.Matches(msg, leadListKeys.Qualify):
		if lead := m.leadList.SelectedLead(); lead != nil {
			return qualifyCmd(m.app, lead.Email)
		}
	case key.Matches(msg, leadListKeys.QualifyAll):
		return qualifyPendingCmd(m.app)
	case key.Matches(msg, leadListKeys.Call):
		if lead := m.leadList.SelectedLead(); lead != nil {
			return triggerCallCmd(m.app, lead.Email)
		}
	case key.Matches(msg, leadListKeys.Propose):
		if lead := m.leadList.SelectedLead(); lead != nil {
			m.confirmMode = confirmPropose
			m.confirmEmail = lead.Email
		}
	case key.Matches(msg, leadListKeys.Webhook):
		if lead := m.leadList.SelectedLead(); lead != nil {
			m.webhookForm = NewWebhookForm(lead.Email, m.formWidth())
			m.activeOverlay = overlayWebhook
		}
	case key.Matches(msg, leadListKeys.Import):
		m.importForm = NewImportForm(m.formWidth())
		m.activeOverlay = overlayImport
	case key.Matches(msg, leadListKeys.Refresh):
		return m.refreshCmds()
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	if m.settingsForm.IsEditing() {
		switch msg.Type {
		case tea.KeyEnter:
			changed, err := m.settingsForm.FinishEdit()
			if err != nil {
				m.err = err
				return clearErrorAfter(3 * time.Second)
			}
			if changed {
				m.app.ApplySettings(m.settingsForm.Settings())
				m.toast = "Settings applied to this session"
				return clearToastAfter(3 * time.Second)
			}
			return nil
		case tea.KeyEscape:
			m.settingsForm.CancelEdit()
			return nil
		default:
			ti := m.settingsForm.InputModel()
			newTI, _ := ti.Update(msg)
			*ti = newTI
			return nil
		}
	}

	switch {
	case key.Matches(msg, settingsKeys.Up):
		m.settingsForm.MoveUp()
	case key.Matches(msg, settingsKeys.Down):
		m.settingsForm.MoveDown()
	case key.Matches(msg, settingsKeys.Toggle):
		if m.settingsForm.Toggle() {
			m.app.ApplySettings(m.settingsForm.Settings())
			m.toast = "Settings applied to this session"
			return clearToastAfter(3 * time.Second)
		}
	case key.Matches(msg, settingsKeys.Enter):
		if m.settingsForm.StartEdit() {
			return nil
		}
		if m.settingsForm.Toggle() {
			m.app.ApplySettings(m.settingsForm.Settings())
			m.toast = "Settings applied to this session"
			return clearToastAfter(3 * time.Second)
		}
	case key.Matches(msg, settingsKeys.Save):
		s := m.settingsForm.Settings()
		if err := config.SaveSettings(m.app.Workspace(), &s); err != nil {
			m.err = err
			return clearErrorAfter(5 * time.Second)
		}
		m.toast = "Settings saved as startup defaults"
		return clearToastAfter(3 * time.Second)
	}
	return nil
}

func (m *Model) handleOutboxKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyPgUp:
		m.outboxView.PageUp()
		return nil
	case tea.KeyPgDown:
		m.outboxView.PageDown()
		return nil
	}

	switch {
	case key.Matches(msg, outboxKeys.Up):
		m.outboxView.MoveUp()
	case key.Matches(msg, outboxKeys.Down):
		m.outboxView.MoveDown()
	case key.Matches(msg, outboxKeys.Left):
		return loadArtifactsCmd(m.app, m.outboxView.CycleKind(-1))
	case key.Matches(msg, outboxKeys.Right):
		return loadArtifactsCmd(m.app, m.outboxView.CycleKind(1))
	case key.Matches(msg, outboxKeys.Enter):
		if !m.outboxView.IsViewing() {
			if art := m.outboxView.SelectedArtifact(); art != nil {
				return readArtifactCmd(m.app, *art)
			}
		}
	case key.Matches(msg, outboxKeys.Back):
		m.outboxView.GoBack()
	}
	return nil
}

func (m *Model) handleActivityKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, outboxKeys.Up):
		m.activityView.ScrollUp(1)
	case key.Matches(msg, outboxKeys.Down):
		m.activityView.ScrollDown(1)
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		switch m.confirmMode {
		case confirmPropose:
			m.confirmMode = confirmNone
			email := m.confirmEmail
			m.confirmEmail = ""
			return sendProposalCmd(m.app, email)
		case confirmQuit:
			m.confirmMode = confirmNone
			return tea.Quit
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
		m.confirmEmail = ""
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlayAddLead, overlayEditLead:
		return m.handleLeadFormKey(msg)

	case overlayWebhook:
		return m.handleWebhookFormKey(msg)

	case overlayImport:
		return m.handleImportFormKey(msg)
	}
	return nil
}

func (m *Model) handleLeadFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.leadForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		lead, err := m.leadForm.Lead()
		if err != nil {
			m.err = err
			return clearErrorAfter(3 * time.Second)
		}
		return saveLeadCmd(m.app, lead)
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.leadForm = nil
		return nil
	case key.Matches(msg, overlayKeys.Tab):
		m.leadForm.FocusNext()
		return nil
	}

	ti := m.leadForm.Input()
	newTI, _ := ti.Update(msg)
	*ti = newTI
	return nil
}

func (m *Model) handleWebhookFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.webhookForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		wf := m.webhookForm
		m.activeOverlay = overlayNone
		m.webhookForm = nil
		return webhookCmd(m.app, wf.Email(), wf.EventType(), wf.Transcript())
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.webhookForm = nil
		return nil
	case key.Matches(msg, overlayKeys.Tab):
		m.webhookForm.FocusNext()
		return nil
	}

	// Event field: cycle on space/enter
	if m.webhookForm.FocusIndex() == 0 {
		if msg.String() == " " || msg.Type == tea.KeyEnter {
			m.webhookForm.CycleEvent()
		}
		return nil
	}

	ta := m.webhookForm.TranscriptArea()
	newTA, _ := ta.Update(msg)
	*ta = newTA
	return nil
}

func (m *Model) handleImportFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.importForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Save):
		path := m.importForm.Path()
		if path == "" {
			m.err = fmt.Errorf("file path is required")
			return clearErrorAfter(3 * time.Second)
		}
		return importCmd(m.app, path)
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.importForm = nil
		return nil
	}

	ti := m.importForm.Input()
	newTI, _ := ti.Update(msg)
	*ti = newTI
	return nil
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.focusedPanel == 0 && m.leftTab == 0 {
			m.leadList.MoveUp()
		} else if m.focusedPanel == 1 {
			if m.rightTab == 0 {
				m.outboxView.MoveUp()
			} else {
				m.activityView.ScrollUp(3)
			}
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.focusedPanel == 0 && m.leftTab == 0 {
			m.leadList.MoveDown()
		} else if m.focusedPanel == 1 {
			if m.rightTab == 0 {
				m.outboxView.MoveDown()
			} else {
				m.activityView.ScrollDown(3)
			}
		}
		return nil
	}

	if msg.X < layout.dividerCol {
		m.focusedPanel = 0
	} else {
		m.focusedPanel = 1
	}
	return nil
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) formWidth() int {
	w := m.width - 10
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height, m.splitRatio)
	innerHeight := max(layout.contentHeight-2, 1)
	leftInner := max(layout.leftWidth-2, 1)
	rightInner := max(layout.rightWidth-2, 1)

	m.leadList.SetHeight(innerHeight)
	m.settingsForm.SetSize(leftInner, innerHeight)
	m.outboxView.SetSize(rightInner, innerHeight)
	m.activityView.SetSize(rightInner, innerHeight)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < 80 || m.height < 24 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 80x24, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	var leftContent string
	switch m.leftTab {
	case 0:
		leftContent = m.leadList.View(max(layout.leftWidth-2, 1))
	case 1:
		leftContent = m.settingsForm.View()
	}

	var rightContent string
	switch m.rightTab {
	case 0:
		rightContent = m.outboxView.View()
	case 1:
		rightContent = m.activityView.View()
	}

	header := renderHeader(m.leads, m.leftTab, m.rightTab, m.width)
	panels := renderPanels(leftContent, rightContent, layout, m.focusedPanel)
	statusBar := renderStatusBar(&m, m.width)

	base := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	switch m.activeOverlay {
	case overlayHelp:
		return renderOverlay(base, renderHelp(m.width), m.width, m.height)
	case overlayAddLead, overlayEditLead:
		if m.leadForm != nil {
			return renderOverlay(base, m.leadForm.View(), m.width, m.height)
		}
	case overlayWebhook:
		if m.webhookForm != nil {
			return renderOverlay(base, m.webhookForm.View(), m.width, m.height)
		}
	case overlayImport:
		if m.importForm != nil {
			return renderOverlay(base, m.importForm.View(), m.width, m.height)
		}
	}

	return base
}

func (m *Model) openLeadForm(mode string, lead *models.Lead) {
	m.leadForm = NewLeadForm(mode, m.formWidth())
	if mode == "edit" && lead != nil {
		m.leadForm.PreFill(*lead)
		m.activeOverlay = overlayEditLead
		return
	}
	m.activeOverlay = overlayAddLead
}
