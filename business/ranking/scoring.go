package ranking

import (
	"math"
	"strings"
	"time"

	"storeRanker/domain"
	"storeRanker/pkg/logger"
)

const (
	fastResponseMinutes = 10.0
	promoRecentWindow   = 24 * time.Hour

	// float error below this is not worth reporting as a clamp
	clampTolerance = 1e-9
)

type direction int

const (
	higherIsBetter direction = iota
	lowerIsBetter
)

type continuousCriterion struct {
	criterion domain.Criterion
	dir       direction
	value     func(domain.Store) float64
}

var continuousCriteria = []continuousCriterion{
	{domain.CriterionRating, higherIsBetter, func(s domain.Store) float64 { return s.Rating }},
	{domain.CriterionReviews, higherIsBetter, func(s domain.Store) float64 { return float64(s.ReviewCount) }},
	{domain.CriterionDelivery, lowerIsBetter, func(s domain.Store) float64 { return float64(s.DeliveryDays) }},
	{domain.CriterionSuccess, higherIsBetter, func(s domain.Store) float64 { return s.SuccessRatePct }},
	{domain.CriterionComplaint, lowerIsBetter, func(s domain.Store) float64 { return s.ComplaintRatePct }},
	{domain.CriterionPromo, higherIsBetter, func(s domain.Store) float64 { return float64(s.ActivePromoCount) }},
	{domain.CriterionResponse, lowerIsBetter, func(s domain.Store) float64 { return s.ChatResponseMinutes }},
	{domain.CriterionLoyalty, higherIsBetter, func(s domain.Store) float64 { return float64(s.LoyalCustomerCount) }},
}

// indicatorInput carries the per-query values binary criteria compare against.
type indicatorInput struct {
	userLocation string
	activity     domain.ActivityPreference
	now          time.Time
}

type binaryCriterion struct {
	criterion domain.Criterion
	fires     func(domain.Store, indicatorInput) bool
}

var binaryCriteria = []binaryCriterion{
	{domain.CriterionProximity, func(s domain.Store, in indicatorInput) bool {
		return in.userLocation != "" && strings.EqualFold(s.Location, in.userLocation)
	}},
	{domain.CriterionActivityMatch, func(s domain.Store, in indicatorInput) bool {
		return in.activity.Matches(s.Category)
	}},
	{domain.CriterionFastResponse, func(s domain.Store, _ indicatorInput) bool {
		return s.ChatResponseMinutes <= fastResponseMinutes
	}},
	{domain.CriterionPromoRecent, func(s domain.Store, in indicatorInput) bool {
		// a promo scheduled in the future has not launched yet
		d := in.now.Sub(s.LastPromoAt)
		return d >= 0 && d <= promoRecentWindow
	}},
}

// Score computes every criterion value for each store and the weighted composite over the
// criteria present in weights. Min-max bounds come from stores itself, not the full catalog.
// weights must already be normalized. stores is not modified.
func Score(
	stores []domain.Store,
	weights domain.Weights,
	userLocation string,
	activity domain.ActivityPreference,
	now time.Time,
) ([]domain.ScoredStore, error) {
	if err := validateNormalized(weights); err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return []domain.ScoredStore{}, nil
	}

	out := make([]domain.ScoredStore, len(stores))
	for i, s := range stores {
		out[i] = domain.ScoredStore{
			Store:    s,
			Criteria: make(map[domain.Criterion]float64, len(continuousCriteria)+len(binaryCriteria)),
		}
	}

	for _, cc := range continuousCriteria {
		lo, hi := bounds(stores, cc.value)
		for i, s := range stores {
			out[i].Criteria[cc.criterion] = minMax(cc.value(s), lo, hi, cc.dir)
		}
	}

	in := indicatorInput{userLocation: strings.TrimSpace(userLocation), activity: activity, now: now}
	for _, bc := range binaryCriteria {
		for i, s := range stores {
			v := 0.0
			if bc.fires(s, in) {
				v = 1.0
			}
			out[i].Criteria[bc.criterion] = v
		}
	}

	order := domain.AllCriteria()
	for i := range out {
		total := 0.0
		for _, c := range order {
			if w, ok := weights[c]; ok {
				total += out[i].Criteria[c] * w
			}
		}

		clamped := clamp01(total)
		if math.Abs(clamped-total) > clampTolerance {
			ScoreClampedTotal.Inc()
			logger.Warn("composite score clamped",
				"store_id", out[i].ID,
				"raw_total", total,
			)
		}

		out[i].Total = clamped
		out[i].ScorePercent = scorePercent(clamped)
	}

	return out, nil
}

func bounds(stores []domain.Store, value func(domain.Store) float64) (float64, float64) {
	lo, hi := value(stores[0]), value(stores[0])
	for _, s := range stores[1:] {
		v := value(s)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// minMax maps v onto [0,1]. A degenerate range scores every store 1.
func minMax(v, lo, hi float64, dir direction) float64 {
	if hi == lo {
		return 1.0
	}
	if dir == lowerIsBetter {
		return (hi - v) / (hi - lo)
	}
	return (v - lo) / (hi - lo)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}

// scorePercent renders a total as a percentage with one decimal, capped at 100.
func scorePercent(total float64) float64 {
	return math.Min(math.Round(total*1000)/10, 100.0)
}
