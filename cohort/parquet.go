package cohort

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// patientRow mirrors the columnar schema of the transient Parquet
// artifact. Only the three columns the aggregation touches are kept.
type patientRow struct {
	BMI     float64 `parquet:"bmi"`
	Glucose float64 `parquet:"glucose"`
	Age     float64 `parquet:"age"`
}

// writeColumnarArtifact converts the loaded rows to Parquet at path.
func writeColumnarArtifact(path string, rows []patientRow) error {
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("failed to write columnar artifact %s: %w", path, err)
	}
	return nil
}

// readColumnarArtifact reads all rows back from the Parquet artifact.
func readColumnarArtifact(path string) ([]patientRow, error) {
	rows, err := parquet.ReadFile[patientRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read columnar artifact %s: %w", path, err)
	}
	return rows, nil
}
