package cohort

// BMI categories used to bucket patients for aggregate reporting.
const (
	Underweight = "Underweight"
	Normal      = "Normal"
	Overweight  = "Overweight"
	Obese       = "Obese"
)

// Inclusion bounds: rows outside this closed range are dropped before
// any aggregation happens.
const (
	minBMI = 10.0
	maxBMI = 60.0
)

// BMIRange maps a BMI value to its category. Bounds are checked in
// order, first match wins: <18.5, <25, <30, else Obese.
func BMIRange(bmi float64) string {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
