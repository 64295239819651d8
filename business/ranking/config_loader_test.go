//go:build !integration

package ranking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storeRanker/domain"
	"storeRanker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadRawWeights_Precedence(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]domain.RankingProfile{
		"default": {Name: "default", Weights: map[string]any{"rating": 1.0}},
		"speed":   {Name: "speed", Weights: map[string]any{"delivery": 5.0, "fast_response": json.Number("2")}},
		"broken":  {Name: "broken", Weights: map[string]any{"rating": "high"}},
		"bogus":   {Name: "bogus", Weights: map[string]any{"price": 1.0}},
	}}
	svc := newTestService(&fakeCatalog{}, profiles)
	ctx := context.Background()

	w, src := svc.loadRawWeights(ctx, domain.QueryContext{Weights: domain.Weights{domain.CriterionPromo: 3}})
	assert.Equal(t, "request", src)
	assert.Equal(t, 3.0, w[domain.CriterionPromo])
	assert.Len(t, w, len(domain.BaseCriteria))

	w, src = svc.loadRawWeights(ctx, domain.QueryContext{Profile: "speed"})
	assert.Equal(t, "profile:speed", src)
	assert.Equal(t, 5.0, w[domain.CriterionDelivery])
	assert.Equal(t, 2.0, w[domain.CriterionFastResponse])

	w, src = svc.loadRawWeights(ctx, domain.QueryContext{})
	assert.Equal(t, "profile:default", src)
	assert.Equal(t, 1.0, w[domain.CriterionRating])

	for _, name := range []string{"broken", "bogus", "missing"} {
		w, src = svc.loadRawWeights(ctx, domain.QueryContext{Profile: name})
		assert.Equal(t, "default", src, name)
		assert.Equal(t, DefaultConfig().DefaultWeights, w, name)
	}
}

func TestLoadRawWeights_InvalidProfileLogsReason(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(zap.NewNop()) })

	profiles := &fakeProfiles{profiles: map[string]domain.RankingProfile{
		"bogus": {Name: "bogus", Weights: map[string]any{"price": 1.0}},
	}}
	svc := newTestService(&fakeCatalog{}, profiles)

	_, src := svc.loadRawWeights(context.Background(), domain.QueryContext{Profile: "bogus"})
	assert.Equal(t, "default", src)

	entries := logs.FilterMessage("ranking profile has invalid weights, using defaults").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "unknown criterion")
}

func TestLoadRawWeights_RepositoryErrorFallsBack(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeProfiles{err: errors.New("db down")})

	w, src := svc.loadRawWeights(context.Background(), domain.QueryContext{Profile: "speed"})

	assert.Equal(t, "default", src)
	assert.Equal(t, DefaultConfig().DefaultWeights, w)
}

func TestLoadRawWeights_DefaultsAreCopied(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, nil)

	w, _ := svc.loadRawWeights(context.Background(), domain.QueryContext{})
	w[domain.CriterionRating] = 1000

	assert.Equal(t, 25.0, svc.defaultCfg.DefaultWeights[domain.CriterionRating])
}

func TestWeightsJSONMapRoundTrip(t *testing.T) {
	in := domain.Weights{domain.CriterionRating: 25, domain.CriterionLoyalty: 1.5}

	out, err := WeightsFromJSONMap(WeightsToJSONMap(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = WeightsFromJSONMap(map[string]any{"rating": 3, "reviews": int64(4), "promo": float32(0.5)})
	require.NoError(t, err)
	assert.Equal(t, domain.Weights{"rating": 3, "reviews": 4, "promo": 0.5}, out)

	_, err = WeightsFromJSONMap(map[string]any{"rating": json.Number("x")})
	assert.Error(t, err)
}

func TestTraceID(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
}
