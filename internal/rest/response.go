package rest

import (
	"storeRanker/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func toWeights(in map[string]float64) domain.Weights {
	if len(in) == 0 {
		return nil
	}
	out := make(domain.Weights, len(in))
	for k, v := range in {
		out[domain.Criterion(k)] = v
	}
	return out
}
