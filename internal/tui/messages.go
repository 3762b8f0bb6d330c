package tui

import (
	"github.com/leadline-io/leadline/internal/app"
	"github.com/leadline-io/leadline/internal/models"
)

// LeadsLoadedMsg carries the lead collection after a reload.
type LeadsLoadedMsg struct {
	Leads []models.Lead
}

// LeadSavedMsg signals a lead was created or updated.
type LeadSavedMsg struct{}

// ActionDoneMsg signals a lifecycle operation completed.
type ActionDoneMsg struct {
	Info string
}

// ImportDoneMsg carries the result of a CSV import.
type ImportDoneMsg struct {
	Result app.ImportResult
}

// ArtifactsLoadedMsg carries an outbox listing.
type ArtifactsLoadedMsg struct {
	Kind      models.ArtifactKind
	Artifacts []models.Artifact
}

// ArtifactContentMsg carries a single artifact's content.
type ArtifactContentMsg struct {
	Artifact models.Artifact
	Content  string
}

// ActivityLoadedMsg carries the notification log tail.
type ActivityLoadedMsg struct {
	Lines []string
}

// ToastMsg carries a notification raised mid-operation.
type ToastMsg struct {
	Message string
}

// OutboxChangedMsg signals the outbox directories changed on disk.
type OutboxChangedMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearToastMsg clears the toast display.
type ClearToastMsg struct{}
