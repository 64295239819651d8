package ranking

import (
	"errors"
	"fmt"
	"math"

	"storeRanker/domain"
)

// weightSumTolerance bounds how far normalized weights may drift from 1.
const weightSumTolerance = 1e-6

var (
	ErrUnknownCriterion     = errors.New("unknown criterion")
	ErrNegativeWeight       = errors.New("weight must be non-negative")
	ErrWeightsNotNormalized = errors.New("weights are not normalized")
)

// NormalizeWeights scales raw weights so they sum to 1. When the sum is zero or negative
// every criterion gets 1/len(raw). The input map is left untouched.
func NormalizeWeights(raw domain.Weights) domain.Weights {
	out := make(domain.Weights, len(raw))
	if len(raw) == 0 {
		return out
	}

	sum := raw.Sum()
	if sum <= 0 {
		uniform := 1.0 / float64(len(raw))
		for k := range raw {
			out[k] = uniform
		}
		return out
	}

	for k, v := range raw {
		out[k] = v / sum
	}
	return out
}

// IsUniformFallback reports whether NormalizeWeights(raw) takes the uniform path.
func IsUniformFallback(raw domain.Weights) bool {
	return len(raw) > 0 && raw.Sum() <= 0
}

// ValidateRaw checks caller-supplied weights before normalization.
func ValidateRaw(raw domain.Weights) error {
	for k, v := range raw {
		if !k.IsKnown() {
			return fmt.Errorf("%w: %q", ErrUnknownCriterion, k)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNegativeWeight, k, v)
		}
	}
	return nil
}

// validateNormalized enforces the invariant the composite score relies on:
// known criteria, non-negative weights, total 1.
func validateNormalized(w domain.Weights) error {
	if err := ValidateRaw(w); err != nil {
		return err
	}
	if len(w) == 0 {
		return fmt.Errorf("%w: empty weight set", ErrWeightsNotNormalized)
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: sum is %.9f", ErrWeightsNotNormalized, sum)
	}
	return nil
}

// WithBaseCriteria returns raw with every base criterion present, adding zeros for the
// missing ones. Extended criteria are kept only if the caller supplied them.
func WithBaseCriteria(raw domain.Weights) domain.Weights {
	out := raw.Clone()
	for _, c := range domain.BaseCriteria {
		if _, ok := out[c]; !ok {
			out[c] = 0
		}
	}
	return out
}
