package domain

import (
	"time"
)

// CREATE TABLE public.stores (
//     id                    BIGINT PRIMARY KEY,
//     name                  TEXT NOT NULL,
//     category              TEXT NOT NULL,
//     location              TEXT NOT NULL,
//     rating                NUMERIC NOT NULL,
//     review_count          INTEGER NOT NULL,
//     delivery_days         INTEGER NOT NULL,
//     success_rate_pct      NUMERIC NOT NULL,
//     complaint_rate_pct    NUMERIC NOT NULL,
//     active_promo_count    INTEGER NOT NULL,
//     chat_response_minutes NUMERIC NOT NULL,
//     total_products        INTEGER NOT NULL,
//     last_promo_at         TIMESTAMPTZ NOT NULL
// );

// Store is one catalog entry. Values are never changed after the catalog is loaded.
type Store struct {
	ID                  uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name                string    `gorm:"column:name;type:text;not null" json:"name"`
	Category            string    `gorm:"column:category;type:text;not null" json:"category"`
	Location            string    `gorm:"column:location;type:text;not null" json:"location"`
	Rating              float64   `gorm:"column:rating;type:numeric" json:"rating"`
	ReviewCount         int       `gorm:"column:review_count" json:"review_count"`
	DeliveryDays        int       `gorm:"column:delivery_days" json:"delivery_days"`
	SuccessRatePct      float64   `gorm:"column:success_rate_pct;type:numeric" json:"success_rate_pct"`
	ComplaintRatePct    float64   `gorm:"column:complaint_rate_pct;type:numeric" json:"complaint_rate_pct"`
	ActivePromoCount    int       `gorm:"column:active_promo_count" json:"active_promo_count"`
	ChatResponseMinutes float64   `gorm:"column:chat_response_minutes;type:numeric" json:"chat_response_minutes"`
	TotalProducts       int       `gorm:"column:total_products" json:"total_products"`
	LastPromoAt         time.Time `gorm:"column:last_promo_at" json:"last_promo_at"`

	// derived at load time, 20% of ReviewCount
	LoyalCustomerCount int `gorm:"-" json:"loyal_customer_count"`
}

func (Store) TableName() string {
	return "stores"
}

// LoyalCustomerSharePct is the share of reviewers counted as repeat customers.
const LoyalCustomerSharePct = 20

// WithDerived returns a copy of s with the load-time derived fields filled in.
func (s Store) WithDerived() Store {
	s.LoyalCustomerCount = s.ReviewCount * LoyalCustomerSharePct / 100
	return s
}

// CatalogStats summarizes the whole catalog.
type CatalogStats struct {
	TotalStores   int     `json:"total_stores"`
	Categories    int     `json:"categories"`
	Locations     int     `json:"locations"`
	AverageRating float64 `json:"average_rating"`
}

// CatalogOptions lists the distinct filter values available in the catalog.
type CatalogOptions struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
}
