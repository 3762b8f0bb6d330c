// Package app wires the store, outbox, proposal generator, and lifecycle
// engine behind the operations the CLI and TUI expose. Every operation
// follows a load, mutate, save cycle against the workspace document.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/leadline-io/leadline/internal/config"
	"github.com/leadline-io/leadline/internal/importer"
	"github.com/leadline-io/leadline/internal/lifecycle"
	"github.com/leadline-io/leadline/internal/models"
	"github.com/leadline-io/leadline/internal/outbox"
	"github.com/leadline-io/leadline/internal/proposal"
	"github.com/leadline-io/leadline/internal/store"
)

// App is the operation surface shared by the CLI and the TUI.
type App struct {
	workspace    string
	settings     *models.Settings
	store        *store.Store
	outbox       *outbox.Outbox
	engine       *lifecycle.Engine
	disableModel bool
}

// Options configure a new App.
type Options struct {
	// Workspace is the root directory holding data/, outbox/, proposals/
	// and the settings file.
	Workspace string

	// DisableModel skips the Ollama client entirely, forcing the proposal
	// template. Used by tests and the --no-llm flag.
	DisableModel bool
}

// New loads settings, prepares the workspace directories, and wires the
// operation surface.
func New(opts Options) (*App, error) {
	if err := config.EnsureWorkspace(opts.Workspace); err != nil {
		return nil, fmt.Errorf("prepare workspace: %w", err)
	}
	settings, err := config.LoadSettings(opts.Workspace)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	ob := outbox.New(opts.Workspace)

	var text proposal.TextGenerator
	if !opts.DisableModel {
		text = proposal.NewOllamaClient(settings.Model, settings.BaseURL, settings.GenerateTimeout)
	}
	gen := proposal.NewGenerator(text, ob)

	return &App{
		workspace:    opts.Workspace,
		settings:     settings,
		store:        store.New(opts.Workspace),
		outbox:       ob,
		engine:       lifecycle.New(ob, gen, settings.Threshold),
		disableModel: opts.DisableModel,
	}, nil
}

// Workspace returns the workspace root.
func (a *App) Workspace() string {
	return a.workspace
}

// Settings returns the active settings. Edits apply to the running session
// only; the settings file just seeds startup defaults.
func (a *App) Settings() *models.Settings {
	return a.settings
}

// ApplySettings swaps the model client and threshold for the rest of the
// session.
func (a *App) ApplySettings(s models.Settings) {
	*a.settings = s
	var text proposal.TextGenerator
	if !a.disableModel {
		text = proposal.NewOllamaClient(s.Model, s.BaseURL, s.GenerateTimeout)
	}
	a.engine = lifecycle.New(a.outbox, proposal.NewGenerator(text, a.outbox), s.Threshold)
}

// Outbox exposes the outbox for notification hooks.
func (a *App) Outbox() *outbox.Outbox {
	return a.outbox
}

// Leads returns the current collection.
func (a *App) Leads() []models.Lead {
	return a.store.Load()
}

// SaveLead upserts a single lead. Leads without an email are rejected
// because email is the identity key.
func (a *App) SaveLead(lead models.Lead) error {
	if lead.EmailKey() == "" {
		return fmt.Errorf("lead email is required")
	}
	leads := store.Upsert(a.store.Load(), lead)
	return a.store.Save(leads)
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ImportFile imports leads from a CSV file on disk.
func (a *App) ImportFile(path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()
	return a.importLeads(f)
}

func (a *App) importLeads(f *os.File) (ImportResult, error) {
	parsed, skipped, err := importer.Parse(f)
	if err != nil {
		return ImportResult{}, err
	}

	leads := a.store.Load()
	for _, lead := range parsed {
		leads = store.Upsert(leads, lead)
	}
	if a.settings.AutoQualifyOnImport {
		for i := range leads {
			if leads[i].Status == models.StatusNew || leads[i].Status == models.StatusUpdated {
				if _, err := a.engine.Qualify(&leads[i]); err != nil {
					return ImportResult{}, err
				}
			}
		}
	}
	if err := a.store.Save(leads); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Imported: len(parsed), Skipped: skipped}, nil
}

// withLead runs fn against the named lead and persists the collection.
func (a *App) withLead(email string, fn func(*models.Lead) error) error {
	leads := a.store.Load()
	lead := store.Find(leads, email)
	if lead == nil {
		return fmt.Errorf("lead not found: %s", email)
	}
	if err := fn(lead); err != nil {
		return err
	}
	return a.store.Save(leads)
}

// Qualify evaluates one lead against the threshold.
func (a *App) Qualify(email string) (models.LeadStatus, error) {
	var status models.LeadStatus
	err := a.withLead(email, func(lead *models.Lead) error {
		var err error
		status, err = a.engine.Qualify(lead)
		return err
	})
	return status, err
}

// QualifyPending qualifies every lead still in New or Updated and returns
// how many were evaluated.
func (a *App) QualifyPending() (int, error) {
	leads := a.store.Load()
	n := 0
	for i := range leads {
		if leads[i].Status != models.StatusNew && leads[i].Status != models.StatusUpdated {
			continue
		}
		if _, err := a.engine.Qualify(&leads[i]); err != nil {
			return n, err
		}
		n++
	}
	if err := a.store.Save(leads); err != nil {
		return n, err
	}
	return n, nil
}

// TriggerCall writes a simulated call request for the named lead without
// changing its status.
func (a *App) TriggerCall(email string) error {
	return a.withLead(email, func(lead *models.Lead) error {
		return a.engine.TriggerCall(lead)
	})
}

// SendProposal drafts and delivers a proposal for the named lead.
func (a *App) SendProposal(ctx context.Context, email string) error {
	return a.withLead(email, func(lead *models.Lead) error {
		return a.engine.SendProposal(ctx, lead)
	})
}

// Webhook applies a simulated call event to the named lead.
func (a *App) Webhook(ctx context.Context, email, eventType, transcript string) error {
	return a.withLead(email, func(lead *models.Lead) error {
		return a.engine.HandleWebhook(ctx, lead, eventType, transcript)
	})
}

// Artifacts lists outbox artifacts of a kind, newest first.
func (a *App) Artifacts(kind models.ArtifactKind) ([]models.Artifact, error) {
	return a.outbox.List(kind)
}

// ReadArtifact returns an artifact's content.
func (a *App) ReadArtifact(kind models.ArtifactKind, name string) (string, error) {
	return a.outbox.Read(kind, name)
}

// ActivityTail returns the last n notification lines, oldest first.
func (a *App) ActivityTail(n int) []string {
	return a.outbox.Tail(n)
}
