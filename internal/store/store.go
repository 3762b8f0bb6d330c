// Package store persists the lead collection as a single JSON document and
// implements the upsert/merge rules that keep leads consistent across
// repeated imports.
package store

import (
	"encoding/json"
	"os"

	"github.com/leadline-io/leadline/internal/config"
	"github.com/leadline-io/leadline/internal/models"
)

// Store reads and writes the lead collection document.
type Store struct {
	path string
}

// New creates a store backed by the workspace's leads document.
func New(workspace string) *Store {
	return &Store{path: config.LeadsFile(workspace)}
}

// Path returns the document path, mainly for diagnostics.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted collection. An absent or malformed document is
// treated as an empty collection; availability wins over strictness here.
func (s *Store) Load() []models.Lead {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var leads []models.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil
	}
	return leads
}

// Save rewrites the whole collection atomically (temp file + rename), so no
// reader ever sees a partial document.
func (s *Store) Save(leads []models.Lead) error {
	if leads == nil {
		leads = []models.Lead{}
	}
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return err
	}
	return config.WriteFileAtomic(s.path, data)
}

// Find returns a pointer into leads for the record matching email
// (case-insensitive), or nil. Empty emails never match.
func Find(leads []models.Lead, email string) *models.Lead {
	probe := models.Lead{Email: email}
	key := probe.EmailKey()
	if key == "" {
		return nil
	}
	for i := range leads {
		if leads[i].EmailKey() == key {
			return &leads[i]
		}
	}
	return nil
}

// Upsert merges candidate into the collection and returns the updated
// collection. A new email appends (insertion order is preserved across
// saves); an existing one is updated field-wise. Candidates with empty
// emails never match an existing record, including other empty-email
// records, so callers must reject them before reaching the store.
func Upsert(leads []models.Lead, candidate models.Lead) []models.Lead {
	if candidate.Status == "" {
		candidate.Status = models.StatusNew
	}
	if candidate.LastActionAt.IsZero() {
		candidate.Touch()
	}

	existing := Find(leads, candidate.Email)
	if existing == nil {
		return append(leads, candidate)
	}

	merge(existing, candidate)
	return leads
}

// merge applies the candidate's fields onto an existing record. Empty
// candidate strings are treated as absent and leave the existing value
// untouched; Budget always overwrites because zero is a meaningful value
// (an unparseable import budget defaults to 0 and reads as unqualified).
// The merge never reverts a settled status; it only bumps New to Updated.
func merge(existing *models.Lead, candidate models.Lead) {
	if candidate.Name != "" {
		existing.Name = candidate.Name
	}
	if candidate.Email != "" {
		existing.Email = candidate.Email
	}
	if candidate.Company != "" {
		existing.Company = candidate.Company
	}
	if candidate.UseCase != "" {
		existing.UseCase = candidate.UseCase
	}
	if candidate.Phone != "" {
		existing.Phone = candidate.Phone
	}
	if candidate.Notes != "" {
		existing.Notes = candidate.Notes
	}
	existing.Budget = candidate.Budget

	if !existing.Settled() {
		existing.Status = models.StatusUpdated
	}
	existing.Touch()
}
