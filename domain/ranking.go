package domain

import (
	"sort"
	"time"
)

// Criterion names one scoring dimension.
type Criterion string

const (
	CriterionRating    Criterion = "rating"
	CriterionReviews   Criterion = "reviews"
	CriterionDelivery  Criterion = "delivery"
	CriterionSuccess   Criterion = "success"
	CriterionComplaint Criterion = "complaint"
	CriterionPromo     Criterion = "promo"
	CriterionResponse  Criterion = "response"

	CriterionProximity     Criterion = "proximity"
	CriterionActivityMatch Criterion = "activity_match"
	CriterionFastResponse  Criterion = "fast_response"
	CriterionPromoRecent   Criterion = "promo_recent"
	CriterionLoyalty       Criterion = "loyalty"
)

// BaseCriteria are always scored.
var BaseCriteria = []Criterion{
	CriterionRating,
	CriterionReviews,
	CriterionDelivery,
	CriterionSuccess,
	CriterionComplaint,
	CriterionPromo,
	CriterionResponse,
}

// ExtendedCriteria are scored only when they carry a weight entry.
var ExtendedCriteria = []Criterion{
	CriterionProximity,
	CriterionActivityMatch,
	CriterionFastResponse,
	CriterionPromoRecent,
	CriterionLoyalty,
}

// AllCriteria is BaseCriteria followed by ExtendedCriteria.
func AllCriteria() []Criterion {
	out := make([]Criterion, 0, len(BaseCriteria)+len(ExtendedCriteria))
	out = append(out, BaseCriteria...)
	return append(out, ExtendedCriteria...)
}

// IsKnown reports whether c belongs to the closed criterion set.
func (c Criterion) IsKnown() bool {
	for _, k := range AllCriteria() {
		if k == c {
			return true
		}
	}
	return false
}

// Weights maps a criterion to its weight. Raw weights may be any non-negative magnitude;
// normalized weights sum to 1.
type Weights map[Criterion]float64

// Sum returns the total of all weights, added in key order so the result is reproducible.
func (w Weights) Sum() float64 {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	sum := 0.0
	for _, k := range keys {
		sum += w[Criterion(k)]
	}
	return sum
}

// Clone returns an independent copy.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// ActivityPreference is the user's preferred category set: none, one, or many.
type ActivityPreference struct {
	categories map[string]struct{}
}

// NoPreference matches nothing.
func NoPreference() ActivityPreference {
	return ActivityPreference{}
}

// SinglePreference matches exactly one category.
func SinglePreference(category string) ActivityPreference {
	if category == "" {
		return NoPreference()
	}
	return ActivityPreference{categories: map[string]struct{}{category: {}}}
}

// ManyPreference matches any of the given categories. Empty strings are ignored.
func ManyPreference(categories ...string) ActivityPreference {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c != "" {
			set[c] = struct{}{}
		}
	}
	if len(set) == 0 {
		return NoPreference()
	}
	return ActivityPreference{categories: set}
}

// IsSet reports whether any category was supplied.
func (p ActivityPreference) IsSet() bool {
	return len(p.categories) > 0
}

// Matches reports whether category is one of the preferred categories.
func (p ActivityPreference) Matches(category string) bool {
	_, ok := p.categories[category]
	return ok
}

// Filters are the post-rank toggles. Enabled filters are AND-combined.
type Filters struct {
	FastDelivery bool `json:"fast_delivery"`
	HasPromo     bool `json:"has_promo"`
	HighRating   bool `json:"high_rating"`
}

// AnyCategory and AnyLocation disable the corresponding pre-filter.
const (
	AnyCategory = "any"
	AnyLocation = "any"
)

// QueryContext is everything one ranking request needs.
type QueryContext struct {
	Category     string
	Location     string
	UserLocation string
	Activity     ActivityPreference
	Weights      Weights
	Profile      string
	Filters      Filters
}

// ScoredStore is a Store enriched with its per-criterion values, composite score and reason.
type ScoredStore struct {
	Store

	Criteria     map[Criterion]float64 `json:"criteria"`
	Total        float64               `json:"total"`
	ScorePercent float64               `json:"score_percent"`
	Reason       string                `json:"reason"`
}

// Indicator reports whether the binary criterion c fired for this store.
func (s ScoredStore) Indicator(c Criterion) bool {
	return s.Criteria[c] >= 1
}

// ResultSummary averages the displayed results.
type ResultSummary struct {
	AverageRating       float64 `json:"average_rating"`
	AverageDeliveryDays float64 `json:"average_delivery_days"`
	AveragePromoCount   float64 `json:"average_promo_count"`
	AverageSuccessRate  float64 `json:"average_success_rate"`
}

// RankingResult is the answer to one QueryContext.
type RankingResult struct {
	NoMatch           bool          `json:"no_match"`
	Message           string        `json:"message,omitempty"`
	MatchedCount      int           `json:"matched_count"`
	NormalizedWeights Weights       `json:"normalized_weights"`
	UniformFallback   bool          `json:"uniform_fallback"`
	Top               []ScoredStore `json:"top"`
	Stores            []ScoredStore `json:"stores"`
	Summary           ResultSummary `json:"summary"`
	GeneratedAt       time.Time     `json:"generated_at"`
}
