package cohort

import "testing"

func TestBMIRange_Boundaries(t *testing.T) {
	testCases := []struct {
		name     string
		bmi      float64
		expected string
	}{
		{"Just below underweight cutoff", 18.499, Underweight},
		{"Exactly 18.5", 18.5, Normal},
		{"Just below normal cutoff", 24.999, Normal},
		{"Exactly 25", 25, Overweight},
		{"Just below overweight cutoff", 29.999, Overweight},
		{"Exactly 30", 30, Obese},
		{"Low valid BMI", 10, Underweight},
		{"High valid BMI", 60, Obese},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMIRange(tc.bmi)
			if got != tc.expected {
				t.Errorf("BMIRange(%v) = %q, want %q", tc.bmi, got, tc.expected)
			}
		})
	}
}

func TestBMIRange_TotalPartition(t *testing.T) {
	valid := map[string]bool{
		Underweight: true,
		Normal:      true,
		Overweight:  true,
		Obese:       true,
	}

	// Every value in the valid domain must map to exactly one of the
	// four labels.
	for bmi := 10.0; bmi <= 60.0; bmi += 0.1 {
		got := BMIRange(bmi)
		if !valid[got] {
			t.Fatalf("BMIRange(%v) = %q, not a known category", bmi, got)
		}
	}
}
