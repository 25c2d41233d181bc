package premium

import (
	"context"

	"github.com/arogya/arogya/internal/platform/validate"
)

// Service turns raw user input into a premium quote.
type Service struct {
	scorer Scorer
}

func NewService(scorer Scorer) *Service {
	return &Service{scorer: scorer}
}

// Predict validates the input, derives the model features and delegates
// scoring to the configured Scorer.
func (s *Service) Predict(ctx context.Context, in UserInput) (float64, error) {
	if err := validate.Struct(in); err != nil {
		return 0, err
	}
	return s.scorer.Score(ctx, in.FeatureRow())
}
