// Package importer parses CSV lead exports into lead records.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leadline-io/leadline/internal/models"
)

// Parse reads CSV rows into leads. Headers are matched case-insensitively
// after trimming; "prospect" aliases "name" and "automationneed" aliases
// "usecase". Rows without an email are skipped, not errors, and their
// count is returned. An unparseable budget reads as 0.
func Parse(r io.Reader) (leads []models.Lead, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(row []string, keys ...string) string {
		for _, key := range keys {
			if i, ok := idx[key]; ok && i < len(row) {
				if v := strings.TrimSpace(row[i]); v != "" {
					return v
				}
			}
		}
		return ""
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv row: %w", err)
		}

		email := field(row, "email")
		if email == "" {
			skipped++
			continue
		}

		budget, _ := strconv.ParseFloat(field(row, "budget"), 64)
		leads = append(leads, models.Lead{
			Name:    field(row, "name", "prospect"),
			Email:   email,
			Company: field(row, "company"),
			UseCase: field(row, "usecase", "automationneed"),
			Budget:  budget,
			Phone:   field(row, "phone"),
		})
	}
	return leads, skipped, nil
}
