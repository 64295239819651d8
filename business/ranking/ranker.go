package ranking

import (
	"sort"

	"storeRanker/domain"
)

const (
	fastDeliveryMaxDays = 2
	hasPromoMinCount    = 3
	highRatingMin       = 4.7
)

// Rank orders stores by composite score, highest first. Equal scores keep their input order.
func Rank(scored []domain.ScoredStore) []domain.ScoredStore {
	out := make([]domain.ScoredStore, len(scored))
	copy(out, scored)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// ApplyFilters keeps the stores that pass every enabled filter, preserving order.
func ApplyFilters(ranked []domain.ScoredStore, f domain.Filters) []domain.ScoredStore {
	out := make([]domain.ScoredStore, 0, len(ranked))
	for _, s := range ranked {
		if f.FastDelivery && s.DeliveryDays > fastDeliveryMaxDays {
			continue
		}
		if f.HasPromo && s.ActivePromoCount < hasPromoMinCount {
			continue
		}
		if f.HighRating && s.Rating < highRatingMin {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RankAndFilter ranks then filters. An empty result is valid.
func RankAndFilter(scored []domain.ScoredStore, f domain.Filters) []domain.ScoredStore {
	return ApplyFilters(Rank(scored), f)
}

// Summarize averages the displayed results.
func Summarize(stores []domain.ScoredStore) domain.ResultSummary {
	if len(stores) == 0 {
		return domain.ResultSummary{}
	}

	var rating, delivery, promo, success float64
	for _, s := range stores {
		rating += s.Rating
		delivery += float64(s.DeliveryDays)
		promo += float64(s.ActivePromoCount)
		success += s.SuccessRatePct
	}

	n := float64(len(stores))
	return domain.ResultSummary{
		AverageRating:       rating / n,
		AverageDeliveryDays: delivery / n,
		AveragePromoCount:   promo / n,
		AverageSuccessRate:  success / n,
	}
}
