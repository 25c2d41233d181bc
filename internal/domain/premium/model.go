package premium

import "math"

// Lifestyle risk tiers.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

// Age group buckets.
const (
	AgeGroupYoung      = "young"
	AgeGroupAdult      = "adult"
	AgeGroupMiddleAged = "middle-aged"
	AgeGroupSenior     = "senior"
)

// UserInput is the premium prediction request. It is consumed to build a
// feature row and never persisted. Smoker is a pointer so that an absent
// field is a validation failure rather than a silent false.
type UserInput struct {
	Age        int     `json:"age" validate:"required,gt=0,lt=120"`
	Weight     float64 `json:"weight" validate:"required,gt=0"`     // kg
	Height     float64 `json:"height" validate:"required,gt=0"`     // meters
	IncomeLPA  float64 `json:"income_lpa" validate:"required,gt=0"` // lakhs per annum
	Smoker     *bool   `json:"smoker" validate:"required"`
	City       string  `json:"city" validate:"required"`
	Occupation string  `json:"occupation" validate:"required,oneof=retired freelancer student government_job business_owner unemployed private_job"`
}

// BMI computes body-mass index rounded to 2 decimals.
func (in UserInput) BMI() float64 {
	return math.Round(in.Weight/(in.Height*in.Height)*100) / 100
}

// LifestyleRisk tiers the input by smoking status and bmi. Non-smokers
// are always low risk.
func (in UserInput) LifestyleRisk() string {
	smoker := in.Smoker != nil && *in.Smoker
	bmi := in.BMI()
	switch {
	case smoker && bmi > 30:
		return RiskHigh
	case smoker && bmi > 27:
		return RiskMedium
	default:
		return RiskLow
	}
}

// AgeGroup buckets the input's age.
func (in UserInput) AgeGroup() string {
	switch {
	case in.Age < 20:
		return AgeGroupYoung
	case in.Age < 45:
		return AgeGroupAdult
	case in.Age < 60:
		return AgeGroupMiddleAged
	default:
		return AgeGroupSenior
	}
}

// FeatureRow is the ordered feature set handed to the scoring function.
type FeatureRow struct {
	BMI           float64 `json:"bmi"`
	AgeGroup      string  `json:"age_group"`
	LifestyleRisk string  `json:"lifestyle_risk"`
	CityTier      int     `json:"city_tier"`
	IncomeLPA     float64 `json:"income_lpa"`
	Occupation    string  `json:"occupation"`
}

// FeatureRow assembles the derived and pass-through features for
// scoring.
func (in UserInput) FeatureRow() FeatureRow {
	return FeatureRow{
		BMI:           in.BMI(),
		AgeGroup:      in.AgeGroup(),
		LifestyleRisk: in.LifestyleRisk(),
		CityTier:      CityTier(in.City),
		IncomeLPA:     in.IncomeLPA,
		Occupation:    in.Occupation,
	}
}
