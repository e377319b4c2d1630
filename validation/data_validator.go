// Package validation provides integrity checks for the patient
// pipelines. The checks run after a pipeline completes and never
// mutate its result.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/adeydebor/patient-analytics/cleaner"
	"github.com/adeydebor/patient-analytics/cohort"
	"github.com/adeydebor/patient-analytics/logging"
)

// validBMIRanges is the closed set of category labels a cohort result
// may contain.
var validBMIRanges = map[string]bool{
	cohort.Underweight: true,
	cohort.Normal:      true,
	cohort.Overweight:  true,
	cohort.Obese:       true,
}

// maxPatientAge is a sanity ceiling for cleaned record ages.
const maxPatientAge = 150

// DataValidator validates pipeline outputs
type DataValidator struct{}

// NewDataValidator creates a new data validator
func NewDataValidator() *DataValidator {
	return &DataValidator{}
}

// ValidatePatient checks that a cleaned patient record holds the
// post-cleaning invariants: non-empty name, adult integer age.
func (v *DataValidator) ValidatePatient(p *cleaner.Patient) error {
	if p == nil {
		return fmt.Errorf("patient is nil")
	}

	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("empty name")
	}

	if p.Age < 18 {
		return fmt.Errorf("under-age record survived cleaning: %d", p.Age)
	}

	if p.Age > maxPatientAge {
		return fmt.Errorf("implausible age for %s: %d", p.Name, p.Age)
	}

	return nil
}

// CheckDuplicateRecords verifies that no two cleaned records are
// field-wise identical.
func (v *DataValidator) CheckDuplicateRecords(patients []cleaner.Patient) error {
	counts := make(map[cleaner.Patient]int, len(patients))
	for _, p := range patients {
		counts[p]++
	}

	duplicates := 0
	for p, count := range counts {
		if count > 1 {
			duplicates++
			logging.Error("Duplicate patient record detected",
				"name", p.Name,
				"age", int(p.Age),
				"count", count,
			)
		}
	}

	if duplicates > 0 {
		return fmt.Errorf("found %d duplicate patient records", duplicates)
	}

	return nil
}

// ValidateCleanedData validates every record and the duplicate
// invariant in one pass over a cleaning result.
func (v *DataValidator) ValidateCleanedData(patients []cleaner.Patient) error {
	for i := range patients {
		if err := v.ValidatePatient(&patients[i]); err != nil {
			return fmt.Errorf("invalid record at index %d: %w", i, err)
		}
	}

	return v.CheckDuplicateRecords(patients)
}

// ValidateCohortStats checks a cohort aggregation result: known
// category labels, no repeated categories, positive counts and finite
// non-negative averages.
func (v *DataValidator) ValidateCohortStats(stats []cohort.Stats) error {
	seen := make(map[string]bool, len(stats))

	for _, s := range stats {
		if !validBMIRanges[s.BMIRange] {
			return fmt.Errorf("unknown BMI range: %q", s.BMIRange)
		}

		if seen[s.BMIRange] {
			return fmt.Errorf("BMI range %q appears more than once", s.BMIRange)
		}
		seen[s.BMIRange] = true

		if s.PatientCount <= 0 {
			return fmt.Errorf("non-positive patient count for %s: %d", s.BMIRange, s.PatientCount)
		}

		if math.IsNaN(s.AvgGlucose) || math.IsInf(s.AvgGlucose, 0) || s.AvgGlucose < 0 {
			return fmt.Errorf("invalid average glucose for %s: %f", s.BMIRange, s.AvgGlucose)
		}

		if math.IsNaN(s.AvgAge) || math.IsInf(s.AvgAge, 0) || s.AvgAge < 0 {
			return fmt.Errorf("invalid average age for %s: %f", s.BMIRange, s.AvgAge)
		}
	}

	return nil
}
