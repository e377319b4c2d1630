package cleaner

import (
	"fmt"
	"io"
)

// WriteReport prints the cleaned records one per line, in survival
// order.
func WriteReport(w io.Writer, patients []Patient) {
	fmt.Fprintln(w, "Cleaned Patient Data:")
	for _, p := range patients {
		fmt.Fprintf(w, "Name: %s, Age: %d, Diagnosis: %s\n", p.Name, p.Age, p.Diagnosis)
	}
}
