package ranking

import (
	"fmt"
	"strings"

	"storeRanker/domain"
)

// FallbackReason is returned when no rule matches.
const FallbackReason = "trustworthy store with solid performance"

type reasonRule struct {
	name    string
	matches func(domain.ScoredStore) bool
	message func(domain.ScoredStore) string
}

func fixed(msg string) func(domain.ScoredStore) string {
	return func(domain.ScoredStore) string { return msg }
}

// reasonRules are evaluated in order; every matching rule contributes one phrase.
// The two delivery rules are exclusive, the faster one wins.
var reasonRules = []reasonRule{
	{
		name:    "high_rating",
		matches: func(s domain.ScoredStore) bool { return s.Rating >= 4.8 },
		message: fixed("high rating"),
	},
	{
		name:    "fastest_delivery",
		matches: func(s domain.ScoredStore) bool { return s.DeliveryDays <= 1 },
		message: fixed("fastest delivery"),
	},
	{
		name:    "fast_delivery",
		matches: func(s domain.ScoredStore) bool { return s.DeliveryDays > 1 && s.DeliveryDays <= 2 },
		message: fixed("fast delivery"),
	},
	{
		name:    "high_success_rate",
		matches: func(s domain.ScoredStore) bool { return s.SuccessRatePct >= 97 },
		message: fixed("high success rate"),
	},
	{
		name:    "rarely_complained",
		matches: func(s domain.ScoredStore) bool { return s.ComplaintRatePct <= 2 },
		message: fixed("rarely complained about"),
	},
	{
		name:    "active_promos",
		matches: func(s domain.ScoredStore) bool { return s.ActivePromoCount >= 5 },
		message: func(s domain.ScoredStore) string { return fmt.Sprintf("%d active promos", s.ActivePromoCount) },
	},
	{
		name:    "fast_chat_response",
		matches: func(s domain.ScoredStore) bool { return s.ChatResponseMinutes <= fastResponseMinutes },
		message: fixed("fast chat response"),
	},
	{
		name:    "widely_trusted",
		matches: func(s domain.ScoredStore) bool { return s.ReviewCount >= 2000 },
		message: fixed("widely trusted"),
	},
	{
		name:    "nearest_store",
		matches: func(s domain.ScoredStore) bool { return s.Indicator(domain.CriterionProximity) },
		message: fixed("nearest store to you"),
	},
	{
		name:    "preferred_category",
		matches: func(s domain.ScoredStore) bool { return s.Indicator(domain.CriterionActivityMatch) },
		message: fixed("matches your preferred category"),
	},
	{
		name:    "recent_promo",
		matches: func(s domain.ScoredStore) bool { return s.Indicator(domain.CriterionPromoRecent) },
		message: fixed("promo launched in last 24 hours"),
	},
	{
		name:    "repeat_customers",
		matches: func(s domain.ScoredStore) bool { return s.LoyalCustomerCount >= 500 },
		message: fixed("many repeat customers"),
	},
}

// Explain builds the recommendation reason for one scored store.
// It depends only on the store's attributes and indicators, never on its score.
func Explain(s domain.ScoredStore) string {
	reasons := make([]string, 0, len(reasonRules))
	for _, r := range reasonRules {
		if r.matches(s) {
			reasons = append(reasons, r.message(s))
		}
	}

	if len(reasons) == 0 {
		return FallbackReason
	}
	return strings.Join(reasons, ", ")
}
