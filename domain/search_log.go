package domain

import "time"

// SearchLogEntry records one completed query for the session history.
type SearchLogEntry struct {
	Timestamp         time.Time `json:"timestamp"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	RawWeights        Weights   `json:"raw_weights"`
	NormalizedWeights Weights   `json:"normalized_weights"`
	TopStore          string    `json:"top_store"`
}
