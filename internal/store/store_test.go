package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leadline-io/leadline/internal/models"
)

func TestUpsertAppendsNewLead(t *testing.T) {
	leads := Upsert(nil, models.Lead{Name: "Jane", Email: "jane@acme.com", Budget: 12000})

	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	if leads[0].Status != models.StatusNew {
		t.Errorf("expected status %q, got %q", models.StatusNew, leads[0].Status)
	}
	if leads[0].LastActionAt.IsZero() {
		t.Error("expected LastActionAt to be set")
	}
}

func TestUpsertMergesByEmailCaseInsensitive(t *testing.T) {
	leads := Upsert(nil, models.Lead{Name: "Jane", Email: "jane@acme.com", Company: "Acme", Budget: 12000})
	leads = Upsert(leads, models.Lead{Name: "Jane Doe", Email: "JANE@Acme.com", Budget: 15000})

	if len(leads) != 1 {
		t.Fatalf("expected merge into 1 lead, got %d", len(leads))
	}
	got := leads[0]
	if got.Name != "Jane Doe" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
	if got.Company != "Acme" {
		t.Errorf("empty candidate company should not clear existing, got %q", got.Company)
	}
	if got.Budget != 15000 {
		t.Errorf("expected budget overwrite, got %v", got.Budget)
	}
	if got.Status != models.StatusUpdated {
		t.Errorf("expected status %q, got %q", models.StatusUpdated, got.Status)
	}
}

func TestUpsertBudgetZeroOverwrites(t *testing.T) {
	leads := Upsert(nil, models.Lead{Email: "a@b.com", Budget: 9000})
	leads = Upsert(leads, models.Lead{Email: "a@b.com"})

	if leads[0].Budget != 0 {
		t.Errorf("expected budget reset to 0, got %v", leads[0].Budget)
	}
}

func TestUpsertDoesNotDowngradeSettledStatus(t *testing.T) {
	for _, status := range []models.LeadStatus{
		models.StatusQualified,
		models.StatusUnqualified,
		models.StatusProposalSent,
		models.StatusNoAnswer,
	} {
		t.Run(string(status), func(t *testing.T) {
			leads := []models.Lead{{Email: "a@b.com", Status: status, Budget: 5000}}
			leads = Upsert(leads, models.Lead{Email: "a@b.com", Name: "Updated"})

			if leads[0].Status != status {
				t.Errorf("expected status %q preserved, got %q", status, leads[0].Status)
			}
			if leads[0].Name != "Updated" {
				t.Errorf("expected field merge despite settled status, got %q", leads[0].Name)
			}
		})
	}
}

func TestUpsertEmptyEmailNeverMatches(t *testing.T) {
	leads := Upsert(nil, models.Lead{Name: "A"})
	leads = Upsert(leads, models.Lead{Name: "B"})

	if len(leads) != 2 {
		t.Fatalf("empty-email candidates must append, got %d leads", len(leads))
	}
}

func TestUpsertPreservesInsertionOrder(t *testing.T) {
	var leads []models.Lead
	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		leads = Upsert(leads, models.Lead{Email: email})
	}
	leads = Upsert(leads, models.Lead{Email: "a@x.com", Name: "A"})

	want := []string{"c@x.com", "a@x.com", "b@x.com"}
	for i, email := range want {
		if leads[i].Email != email {
			t.Errorf("position %d: expected %q, got %q", i, email, leads[i].Email)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())
	if leads := s.Load(); leads != nil {
		t.Errorf("expected nil for missing file, got %v", leads)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	workspace := t.TempDir()
	s := New(workspace)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if leads := s.Load(); leads != nil {
		t.Errorf("expected nil for malformed file, got %v", leads)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	workspace := t.TempDir()
	s := New(workspace)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatal(err)
	}

	leads := Upsert(nil, models.Lead{Name: "Jane", Email: "jane@acme.com", Budget: 12000})
	if err := s.Save(leads); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	if len(got) != 1 {
		t.Fatalf("expected 1 lead after reload, got %d", len(got))
	}
	if got[0].Email != "jane@acme.com" || got[0].Budget != 12000 {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
}
