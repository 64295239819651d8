package ranking

import (
	"context"

	"storeRanker/domain"
)

type Config struct {
	// profile used when a request names none
	DefaultProfile string

	// raw weights used when neither the request nor a stored profile provides any
	DefaultWeights domain.Weights

	// how many leading results are highlighted
	TopN int
}

const (
	defaultProfileName = "default"
	defaultTopN        = 3
)

// DefaultConfig mirrors the initial slider positions of the store picker.
func DefaultConfig() Config {
	return Config{
		DefaultProfile: defaultProfileName,
		DefaultWeights: domain.Weights{
			domain.CriterionRating:    25,
			domain.CriterionReviews:   10,
			domain.CriterionDelivery:  20,
			domain.CriterionSuccess:   15,
			domain.CriterionComplaint: 10,
			domain.CriterionPromo:     10,
			domain.CriterionResponse:  10,
		},
		TopN: defaultTopN,
	}
}

// ProfileRepository reads and writes named weight profiles.
type ProfileRepository interface {
	GetProfile(ctx context.Context, name string) (domain.RankingProfile, bool, error)
	UpsertProfile(ctx context.Context, profile domain.RankingProfile) error
}
