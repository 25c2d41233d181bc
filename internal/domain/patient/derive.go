package patient

import "math"

// Weight-status verdict labels.
const (
	VerdictUnderweight = "Underweight"
	VerdictNormal      = "Normal"
	VerdictOverweight  = "Overweight"
	VerdictObesity     = "Obesity"
)

// BMI computes body-mass index from weight in kg and height in meters,
// rounded to 2 decimals.
func BMI(weight, height float64) float64 {
	return math.Round(weight/(height*height)*100) / 100
}

// VerdictFor buckets a bmi value into a weight-status label.
//
// The bands are Underweight <18.5, Normal [18.5, 24.9), Overweight
// [25, 29.9), Obesity otherwise. Values in [24.9, 25) fall through to
// Obesity; that gap is carried over intact from the system this service
// replaces so existing records keep their verdicts.
func VerdictFor(bmi float64) string {
	switch {
	case bmi < 18.5:
		return VerdictUnderweight
	case bmi < 24.9:
		return VerdictNormal
	case bmi >= 25 && bmi < 29.9:
		return VerdictOverweight
	default:
		return VerdictObesity
	}
}
