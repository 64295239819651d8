//go:build !integration

package ranking

import (
	"time"

	"storeRanker/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func store(id uint64, name, category string, rating float64, delivery int, success, complaint float64, promo int, chat float64, reviews int) domain.Store {
	s := domain.Store{
		ID:                  id,
		Name:                name,
		Category:            category,
		Location:            "Jakarta",
		Rating:              rating,
		ReviewCount:         reviews,
		DeliveryDays:        delivery,
		SuccessRatePct:      success,
		ComplaintRatePct:    complaint,
		ActivePromoCount:    promo,
		ChatResponseMinutes: chat,
		TotalProducts:       1000,
		LastPromoAt:         testNow.Add(-48 * time.Hour),
	}
	return s.WithDerived()
}

// elektronikStores is the Elektronik slice of the store catalog.
func elektronikStores() []domain.Store {
	return []domain.Store{
		store(1, "TechMart Store", "Elektronik", 4.9, 1, 98, 1, 5, 5, 2500),
		store(4, "Gadget Zone", "Elektronik", 4.6, 3, 93, 5, 2, 20, 1500),
		store(7, "Electronics Hub", "Elektronik", 4.9, 1, 99, 1, 6, 4, 2800),
		store(10, "Digital World", "Elektronik", 4.8, 2, 97, 2, 5, 9, 2100),
		store(13, "Mega Electronics", "Elektronik", 4.5, 3, 91, 7, 2, 22, 1300),
		store(16, "Smart Tech", "Elektronik", 4.9, 1, 99, 1, 6, 5, 2600),
		store(19, "Tech Innovation", "Elektronik", 4.9, 1, 99, 1, 7, 4, 2900),
	}
}

func zeroBaseWeights() domain.Weights {
	w := domain.Weights{}
	for _, c := range domain.BaseCriteria {
		w[c] = 0
	}
	return w
}

// rawComposite recomputes the weighted sum before any clamping.
func rawComposite(s domain.ScoredStore, w domain.Weights) float64 {
	total := 0.0
	for c, v := range w {
		total += s.Criteria[c] * v
	}
	return total
}

func names(stores []domain.ScoredStore) []string {
	out := make([]string, 0, len(stores))
	for _, s := range stores {
		out = append(out, s.Name)
	}
	return out
}
