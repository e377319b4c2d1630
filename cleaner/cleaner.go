package cleaner

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adeydebor/patient-analytics/logging"
)

// adultAge is the minimum age kept after filtering.
const adultAge = 18

// Clean normalizes and filters patient records in input order:
// title-cases the name, keeps only adults (age >= 18) and drops
// field-wise exact duplicates, preserving first-occurrence order.
// An empty input yields an empty, non-nil result.
func Clean(patients []Patient) []Patient {
	caser := cases.Title(language.English)

	// The record struct is comparable, so the value itself is the
	// order-independent dedup key.
	seen := make(map[Patient]struct{}, len(patients))
	cleaned := make([]Patient, 0, len(patients))

	dropped := 0
	duplicates := 0

	for _, p := range patients {
		p.Name = caser.String(p.Name)

		if p.Age < adultAge {
			dropped++
			continue
		}

		if _, dup := seen[p]; dup {
			duplicates++
			continue
		}
		seen[p] = struct{}{}

		cleaned = append(cleaned, p)
	}

	if dropped > 0 || duplicates > 0 {
		logging.Info("Patient cleaning statistics",
			"input_records", len(patients),
			"under_age", dropped,
			"duplicates", duplicates,
			"records_kept", len(cleaned))
	}

	return cleaned
}
