package premium

import (
	"context"
	"math"
	"os"

	"github.com/goccy/go-json"

	"github.com/arogya/arogya/internal/platform/apperr"
)

// Scorer maps a feature row to a premium amount. The production
// implementation wraps a pre-trained model artifact; tests inject
// whatever they need.
type Scorer interface {
	Score(ctx context.Context, row FeatureRow) (float64, error)
}

// LinearScorer scores a feature row with a generalized linear model whose
// parameters are exported to a JSON artifact at training time. How the
// parameters were fit is not this service's concern; the artifact is
// loaded once at startup and read-only afterwards.
type LinearScorer struct {
	params modelParams
}

type modelParams struct {
	Intercept    float64            `json:"intercept"`
	Coefficients struct {
		BMI       float64 `json:"bmi"`
		IncomeLPA float64 `json:"income_lpa"`
	} `json:"coefficients"`
	Weights struct {
		AgeGroup      map[string]float64 `json:"age_group"`
		LifestyleRisk map[string]float64 `json:"lifestyle_risk"`
		CityTier      map[string]float64 `json:"city_tier"`
		Occupation    map[string]float64 `json:"occupation"`
	} `json:"weights"`
}

// LoadLinearScorer reads the model artifact from path.
func LoadLinearScorer(path string) (*LinearScorer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.IO("load model artifact", err)
	}

	var params modelParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, apperr.IO("decode model artifact", err)
	}
	return &LinearScorer{params: params}, nil
}

// Score is total over well-formed feature rows: a categorical level the
// artifact has no weight for contributes zero.
func (s *LinearScorer) Score(_ context.Context, row FeatureRow) (float64, error) {
	p := s.params
	premium := p.Intercept +
		p.Coefficients.BMI*row.BMI +
		p.Coefficients.IncomeLPA*row.IncomeLPA +
		p.Weights.AgeGroup[row.AgeGroup] +
		p.Weights.LifestyleRisk[row.LifestyleRisk] +
		p.Weights.CityTier[tierKey(row.CityTier)] +
		p.Weights.Occupation[row.Occupation]
	return math.Round(premium*100) / 100, nil
}

func tierKey(tier int) string {
	switch tier {
	case 1:
		return "1"
	case 2:
		return "2"
	default:
		return "3"
	}
}
