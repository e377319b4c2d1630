package cohort

import (
	"fmt"
	"io"
	"sort"
)

// Sorted returns a copy of stats ordered lexicographically by BMI range.
func Sorted(stats []Stats) []Stats {
	out := make([]Stats, len(stats))
	copy(out, stats)
	sort.Slice(out, func(i, j int) bool {
		return out[i].BMIRange < out[j].BMIRange
	})
	return out
}

func totalPatients(stats []Stats) int {
	total := 0
	for _, s := range stats {
		total += s.PatientCount
	}
	return total
}

// WriteReport prints the cohort summary in presentation order.
func WriteReport(w io.Writer, stats []Stats) {
	fmt.Fprintln(w, "Cohort Analysis Summary:")
	fmt.Fprintf(w, "Total patients analyzed: %d\n", totalPatients(stats))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Detailed Results (sorted by BMI range):")

	for _, s := range Sorted(stats) {
		fmt.Fprintf(w, "BMI Range: %s\n", s.BMIRange)
		fmt.Fprintf(w, "  - Average Glucose: %.2f\n", s.AvgGlucose)
		fmt.Fprintf(w, "  - Patient Count: %d\n", s.PatientCount)
		fmt.Fprintf(w, "  - Average Age: %.1f\n", s.AvgAge)
		fmt.Fprintln(w)
	}
}
