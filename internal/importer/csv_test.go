package importer

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		"Name,Email,Company,UseCase,Budget,Phone",
		"Jane Doe,jane@acme.com,Acme,Invoice automation,12000,+15551234",
		"Bob,bob@beta.io,Beta,,not-a-number,",
	}, "\n")

	leads, skipped, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}

	jane := leads[0]
	if jane.Name != "Jane Doe" || jane.Email != "jane@acme.com" || jane.Company != "Acme" {
		t.Errorf("unexpected lead %+v", jane)
	}
	if jane.UseCase != "Invoice automation" || jane.Budget != 12000 || jane.Phone != "+15551234" {
		t.Errorf("unexpected lead %+v", jane)
	}
	if leads[1].Budget != 0 {
		t.Errorf("unparseable budget should read as 0, got %v", leads[1].Budget)
	}
}

func TestParseHeaderAliases(t *testing.T) {
	in := strings.Join([]string{
		"Prospect,EMAIL,AutomationNeed,budget",
		"Jane,jane@acme.com,Support bots,8000",
	}, "\n")

	leads, _, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	if leads[0].Name != "Jane" {
		t.Errorf("prospect header should map to name, got %q", leads[0].Name)
	}
	if leads[0].UseCase != "Support bots" {
		t.Errorf("automationneed header should map to use case, got %q", leads[0].UseCase)
	}
}

func TestParseSkipsRowsWithoutEmail(t *testing.T) {
	in := strings.Join([]string{
		"name,email,budget",
		"NoEmail,,5000",
		"Jane,jane@acme.com,12000",
		"Blank,   ,1",
	}, "\n")

	leads, skipped, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", skipped)
	}
	if len(leads) != 1 || leads[0].Email != "jane@acme.com" {
		t.Errorf("unexpected leads %+v", leads)
	}
}

func TestParseEmptyInput(t *testing.T) {
	leads, skipped, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if leads != nil || skipped != 0 {
		t.Errorf("expected empty result, got %v skipped=%d", leads, skipped)
	}
}

func TestParseMalformedRow(t *testing.T) {
	in := "name,email\n\"unterminated,jane@acme.com\n"
	if _, _, err := Parse(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for malformed csv")
	}
}
