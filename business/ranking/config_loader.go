package ranking

import (
	"context"
	"encoding/json"
	"fmt"

	"storeRanker/domain"
	"storeRanker/pkg/logger"
)

// loadRawWeights picks the raw weights for a query: explicit request weights first, then the
// named (or default) stored profile, then the compiled-in defaults.
func (s *RankingService) loadRawWeights(ctx context.Context, q domain.QueryContext) (domain.Weights, string) {
	if len(q.Weights) > 0 {
		return WithBaseCriteria(q.Weights), "request"
	}

	name := q.Profile
	if name == "" {
		name = s.defaultCfg.DefaultProfile
	}

	if s.profileRepo != nil && name != "" {
		profile, ok, err := s.profileRepo.GetProfile(ctx, name)
		switch {
		case err != nil:
			logger.Warn("ranking profile lookup failed, using defaults",
				"profile", name,
				"error", err,
			)
		case ok:
			w, err := WeightsFromJSONMap(profile.Weights)
			if err == nil {
				err = ValidateRaw(w)
			}
			if err == nil {
				return WithBaseCriteria(w), "profile:" + name
			}
			logger.Warn("ranking profile has invalid weights, using defaults",
				"profile", name,
				"error", err,
			)
		}
	}

	return s.defaultCfg.DefaultWeights.Clone(), "default"
}

// WeightsFromJSONMap converts a jsonb column into weights. Values may arrive as float64,
// json.Number or integer types depending on the driver.
func WeightsFromJSONMap(m map[string]any) (domain.Weights, error) {
	out := make(domain.Weights, len(m))
	for k, v := range m {
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case float32:
			f = float64(n)
		case int:
			f = float64(n)
		case int64:
			f = float64(n)
		case json.Number:
			parsed, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("weight %q: %w", k, err)
			}
			f = parsed
		default:
			return nil, fmt.Errorf("weight %q: unsupported type %T", k, v)
		}
		out[domain.Criterion(k)] = f
	}
	return out, nil
}

// WeightsToJSONMap is the inverse of WeightsFromJSONMap.
func WeightsToJSONMap(w domain.Weights) map[string]any {
	out := make(map[string]any, len(w))
	for k, v := range w {
		out[string(k)] = v
	}
	return out
}
