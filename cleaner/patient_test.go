package cleaner

import (
	"encoding/json"
	"testing"
)

func TestAgeUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Age
		wantErr  bool
	}{
		{"Quoted integer", `"32"`, 32, false},
		{"Quoted integer with spaces", `" 32 "`, 32, false},
		{"Bare integer", `32`, 32, false},
		{"Bare float truncates", `32.9`, 32, false},
		{"Zero", `0`, 0, false},
		{"Quoted non-numeric", `"abc"`, 0, true},
		{"Quoted float", `"32.5"`, 0, true},
		{"Null", `null`, 0, true},
		{"Boolean", `true`, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var age Age
			err := json.Unmarshal([]byte(tc.input), &age)

			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error decoding %s", tc.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error decoding %s: %v", tc.input, err)
			}
			if age != tc.expected {
				t.Errorf("Expected age %d, got %d", tc.expected, age)
			}
		})
	}
}

func TestPatientUnmarshal_MissingAgeDefaultsToZero(t *testing.T) {
	var p Patient
	if err := json.Unmarshal([]byte(`{"name": "jane doe", "gender": "female", "diagnosis": "flu"}`), &p); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if p.Age != 0 {
		t.Errorf("Expected age 0 for missing key, got %d", p.Age)
	}
}

func TestPatientUnmarshal_EndToEndExample(t *testing.T) {
	raw := `{"name": "john smith", "age": "32", "gender": "male", "diagnosis": "flu"}`

	var p Patient
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cleaned := Clean([]Patient{p})
	if len(cleaned) != 1 {
		t.Fatalf("Expected 1 cleaned record, got %d", len(cleaned))
	}

	expected := Patient{Name: "John Smith", Age: 32, Gender: "male", Diagnosis: "flu"}
	if cleaned[0] != expected {
		t.Errorf("Expected %+v, got %+v", expected, cleaned[0])
	}
}
