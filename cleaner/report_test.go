package cleaner

import (
	"bytes"
	"testing"
)

func TestWriteReport(t *testing.T) {
	patients := []Patient{
		{Name: "John Smith", Age: 32, Gender: "male", Diagnosis: "flu"},
		{Name: "Mary Johnson", Age: 45, Gender: "female", Diagnosis: "diabetes"},
	}

	var buf bytes.Buffer
	WriteReport(&buf, patients)

	expected := "Cleaned Patient Data:\n" +
		"Name: John Smith, Age: 32, Diagnosis: flu\n" +
		"Name: Mary Johnson, Age: 45, Diagnosis: diabetes\n"

	if buf.String() != expected {
		t.Errorf("Report mismatch.\nExpected:\n%s\nGot:\n%s", expected, buf.String())
	}
}
