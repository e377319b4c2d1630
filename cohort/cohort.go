// Package cohort computes per-BMI-range aggregate statistics over a
// patient CSV export.
package cohort

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/adeydebor/patient-analytics/logging"
)

// ErrNotFound reports a missing input file. Callers can test for it
// with errors.Is and react by supplying a correct path.
var ErrNotFound = errors.New("input file not found")

// Stats holds the aggregate for one BMI range present in the data.
type Stats struct {
	BMIRange     string
	AvgGlucose   float64
	PatientCount int
	AvgAge       float64
}

// Analyze reads the patient CSV at inputFile and returns one Stats row
// per BMI range observed among rows with BMI in [10, 60]. The rows come
// back unordered; use Sorted for a stable presentation order.
//
// The CSV is staged through a transient Parquet artifact in a private
// temp directory, which is removed whether or not aggregation succeeds.
func Analyze(inputFile string) ([]Stats, error) {
	workDir, err := os.MkdirTemp("", "cohortstats")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			logging.Warn("Failed to remove work directory", "dir", workDir, "error", err)
		}
	}()

	return analyzeInDir(inputFile, workDir)
}

// analyzeInDir runs the full pipeline, staging the columnar artifact in
// workDir. The artifact itself is removed before returning, so workDir
// is left empty on every path.
func analyzeInDir(inputFile, workDir string) ([]Stats, error) {
	if _, err := os.Stat(inputFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, inputFile)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", inputFile, err)
	}

	rows, err := loadPatientRows(inputFile)
	if err != nil {
		return nil, err
	}

	artifact := filepath.Join(workDir, "patients.parquet")
	if err := writeColumnarArtifact(artifact, rows); err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(artifact); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.Warn("Failed to remove columnar artifact", "path", artifact, "error", err)
		}
	}()

	scanned, err := readColumnarArtifact(artifact)
	if err != nil {
		return nil, err
	}

	stats, err := aggregate(scanned)
	if err != nil {
		return nil, err
	}

	logging.Info("Cohort aggregation completed",
		"input_rows", len(rows),
		"rows_in_range", totalPatients(stats),
		"ranges", len(stats))

	return stats, nil
}

// loadPatientRows parses the CSV and projects it to the three columns
// the aggregation needs.
func loadPatientRows(path string) ([]patientRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("Failed to close input file", "path", path, "error", err)
		}
	}()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, df.Err)
	}

	if err := requireNumericColumns(df, "BMI", "Glucose", "Age"); err != nil {
		return nil, fmt.Errorf("invalid data in %s: %w", path, err)
	}

	sub := df.Select([]string{"BMI", "Glucose", "Age"})
	if sub.Err != nil {
		return nil, fmt.Errorf("failed to project columns from %s: %w", path, sub.Err)
	}

	bmi := sub.Col("BMI").Float()
	glucose := sub.Col("Glucose").Float()
	age := sub.Col("Age").Float()

	rows := make([]patientRow, sub.Nrow())
	for i := range rows {
		rows[i] = patientRow{BMI: bmi[i], Glucose: glucose[i], Age: age[i]}
	}

	return rows, nil
}

// requireNumericColumns checks that every named column exists and was
// inferred as a numeric type. A string-typed column means at least one
// cell failed to parse as a number.
func requireNumericColumns(df dataframe.DataFrame, cols ...string) error {
	names := df.Names()
	types := df.Types()

	have := make(map[string]series.Type, len(names))
	for i, name := range names {
		have[name] = types[i]
	}

	for _, col := range cols {
		t, ok := have[col]
		if !ok {
			return fmt.Errorf("missing required column %q", col)
		}
		if t != series.Float && t != series.Int {
			return fmt.Errorf("column %q is not numeric (parsed as %s)", col, t)
		}
	}

	return nil
}

// aggregate filters rows to the valid BMI domain, derives the bmi_range
// category and computes the per-range means and counts.
func aggregate(rows []patientRow) ([]Stats, error) {
	if len(rows) == 0 {
		return []Stats{}, nil
	}

	df := dataframe.LoadStructs(rows)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to build dataframe: %w", df.Err)
	}

	df = df.Filter(dataframe.F{Colname: "BMI", Comparator: series.GreaterEq, Comparando: minBMI}).
		Filter(dataframe.F{Colname: "BMI", Comparator: series.LessEq, Comparando: maxBMI})
	if df.Err != nil {
		return nil, fmt.Errorf("failed to filter BMI range: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return []Stats{}, nil
	}

	bmis := df.Col("BMI").Float()
	labels := make([]string, len(bmis))
	for i, b := range bmis {
		labels[i] = BMIRange(b)
	}

	df = df.Mutate(series.New(labels, series.String, "bmi_range"))
	if df.Err != nil {
		return nil, fmt.Errorf("failed to derive bmi_range column: %w", df.Err)
	}

	groups := df.GroupBy("bmi_range")
	if groups.Err != nil {
		return nil, fmt.Errorf("failed to group by bmi_range: %w", groups.Err)
	}

	agg := groups.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_MEAN, dataframe.Aggregation_COUNT, dataframe.Aggregation_MEAN},
		[]string{"Glucose", "BMI", "Age"})
	if agg.Err != nil {
		return nil, fmt.Errorf("failed to aggregate cohorts: %w", agg.Err)
	}

	ranges := agg.Col("bmi_range").Records()
	avgGlucose := agg.Col("Glucose_MEAN").Float()
	counts := agg.Col("BMI_COUNT").Float()
	avgAge := agg.Col("Age_MEAN").Float()

	stats := make([]Stats, len(ranges))
	for i := range ranges {
		stats[i] = Stats{
			BMIRange:     ranges[i],
			AvgGlucose:   avgGlucose[i],
			PatientCount: int(counts[i]),
			AvgAge:       avgAge[i],
		}
	}

	return stats, nil
}
