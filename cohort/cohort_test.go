package cohort

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "patients.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

func findStats(t *testing.T, stats []Stats, bmiRange string) Stats {
	t.Helper()

	for _, s := range stats {
		if s.BMIRange == bmiRange {
			return s
		}
	}
	t.Fatalf("No stats found for range %q", bmiRange)
	return Stats{}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyze_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.csv")

	_, err := Analyze(missing)
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	path := writeCSV(t, `BMI,Glucose,Age
17,100,20
22,120,30
35,140,40
`)

	stats, err := Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(stats) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(stats))
	}

	testCases := []struct {
		bmiRange   string
		avgGlucose float64
		avgAge     float64
	}{
		{Underweight, 100, 20},
		{Normal, 120, 30},
		{Obese, 140, 40},
	}

	for _, tc := range testCases {
		t.Run(tc.bmiRange, func(t *testing.T) {
			s := findStats(t, stats, tc.bmiRange)
			if s.PatientCount != 1 {
				t.Errorf("Expected patient count 1, got %d", s.PatientCount)
			}
			if !closeTo(s.AvgGlucose, tc.avgGlucose) {
				t.Errorf("Expected avg glucose %v, got %v", tc.avgGlucose, s.AvgGlucose)
			}
			if !closeTo(s.AvgAge, tc.avgAge) {
				t.Errorf("Expected avg age %v, got %v", tc.avgAge, s.AvgAge)
			}
		})
	}
}

func TestAnalyze_BMIDomainBoundaries(t *testing.T) {
	// Only the rows at exactly 10 and 60 are inside the closed range.
	path := writeCSV(t, `BMI,Glucose,Age
9.999,100,20
10,100,20
60,140,40
60.001,140,40
`)

	stats, err := Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	total := 0
	for _, s := range stats {
		total += s.PatientCount
	}
	if total != 2 {
		t.Errorf("Expected 2 rows in range, got %d", total)
	}

	under := findStats(t, stats, Underweight)
	if under.PatientCount != 1 {
		t.Errorf("Expected 1 underweight patient, got %d", under.PatientCount)
	}

	obese := findStats(t, stats, Obese)
	if obese.PatientCount != 1 {
		t.Errorf("Expected 1 obese patient, got %d", obese.PatientCount)
	}
}

func TestAnalyze_SingleCategoryMeans(t *testing.T) {
	path := writeCSV(t, `BMI,Glucose,Age
20,90,25
21,110,35
22,130,45
`)

	stats, err := Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(stats) != 1 {
		t.Fatalf("Expected a single category, got %d", len(stats))
	}

	s := stats[0]
	if s.BMIRange != Normal {
		t.Errorf("Expected category %q, got %q", Normal, s.BMIRange)
	}
	if s.PatientCount != 3 {
		t.Errorf("Expected patient count 3, got %d", s.PatientCount)
	}
	if !closeTo(s.AvgGlucose, 110) {
		t.Errorf("Expected avg glucose 110, got %v", s.AvgGlucose)
	}
	if !closeTo(s.AvgAge, 35) {
		t.Errorf("Expected avg age 35, got %v", s.AvgAge)
	}
}

func TestAnalyze_CountsSumToFilteredRows(t *testing.T) {
	path := writeCSV(t, `BMI,Glucose,Age
5,80,18
15,85,22
23,95,31
27,105,44
33,125,52
70,150,60
`)

	stats, err := Analyze(path)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	total := 0
	for _, s := range stats {
		total += s.PatientCount
	}

	// 4 of the 6 input rows have BMI in [10, 60]
	if total != 4 {
		t.Errorf("Expected counts to sum to 4, got %d", total)
	}
}

func TestAnalyze_MissingColumn(t *testing.T) {
	path := writeCSV(t, `BMI,Age
20,30
`)

	_, err := Analyze(path)
	if err == nil {
		t.Fatal("Expected error for missing Glucose column")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("Missing column should not be a not-found error, got: %v", err)
	}
}

func TestAnalyze_NonNumericColumn(t *testing.T) {
	path := writeCSV(t, `BMI,Glucose,Age
20,high,30
`)

	_, err := Analyze(path)
	if err == nil {
		t.Fatal("Expected error for non-numeric Glucose values")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("Malformed data should not be a not-found error, got: %v", err)
	}
}

func TestAnalyzeInDir_ArtifactRemoved(t *testing.T) {
	path := writeCSV(t, `BMI,Glucose,Age
22,120,30
`)

	workDir := t.TempDir()
	if _, err := analyzeInDir(path, workDir); err != nil {
		t.Fatalf("analyzeInDir failed: %v", err)
	}

	entries, err := os.ReadDir(workDir)
	if err != nil {
		t.Fatalf("Failed to read work dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected work dir to be empty after analysis, found %d entries", len(entries))
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats, err := aggregate(nil)
	if err != nil {
		t.Fatalf("aggregate failed on empty input: %v", err)
	}
	if stats == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(stats) != 0 {
		t.Errorf("Expected no stats, got %d", len(stats))
	}
}
