//go:build !integration

package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"storeRanker/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeCatalog struct {
	stores []domain.Store
	err    error
	calls  int
}

func (f *fakeCatalog) LoadCatalog(ctx context.Context) ([]domain.Store, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Store, len(f.stores))
	copy(out, f.stores)
	return out, nil
}

type fakeProfiles struct {
	profiles map[string]domain.RankingProfile
	err      error
	upserted []domain.RankingProfile
}

func (f *fakeProfiles) GetProfile(ctx context.Context, name string) (domain.RankingProfile, bool, error) {
	if f.err != nil {
		return domain.RankingProfile{}, false, f.err
	}
	p, ok := f.profiles[name]
	return p, ok, nil
}

func (f *fakeProfiles) UpsertProfile(ctx context.Context, p domain.RankingProfile) error {
	f.upserted = append(f.upserted, p)
	return nil
}

type recorder struct {
	entries []domain.SearchLogEntry
}

func (r *recorder) LogQuery(e domain.SearchLogEntry) {
	r.entries = append(r.entries, e)
}

func mixedCatalog() []domain.Store {
	stores := elektronikStores()
	bandung := store(2, "Fashion Paradise", "Pakaian", 4.7, 2, 95, 3, 3, 15, 1800)
	bandung.Location = "Bandung"
	return append(stores, bandung)
}

func newTestService(cat CatalogProvider, profiles ProfileRepository) *RankingService {
	return NewRankingService(cat, profiles, DefaultConfig()).WithClock(func() time.Time { return testNow })
}

// ---- tests ----

func TestRecommend_ElektronikUniform(t *testing.T) {
	svc := newTestService(&fakeCatalog{stores: mixedCatalog()}, nil)
	rec := &recorder{}

	res, err := svc.Recommend(context.Background(), domain.QueryContext{
		Category: "Elektronik",
		Location: domain.AnyLocation,
		Weights:  zeroBaseWeights(),
	}, rec)
	require.NoError(t, err)

	assert.False(t, res.NoMatch)
	assert.True(t, res.UniformFallback)
	assert.Equal(t, 7, res.MatchedCount)
	require.Len(t, res.NormalizedWeights, 7)
	for _, v := range res.NormalizedWeights {
		assert.InDelta(t, 1.0/7.0, v, 1e-12)
	}

	assert.Equal(t, []string{"Tech Innovation", "Electronics Hub", "Smart Tech"}, names(res.Top))
	assert.Len(t, res.Stores, 7)
	for _, s := range res.Stores {
		assert.NotEmpty(t, s.Reason)
	}
	assert.Equal(t, testNow, res.GeneratedAt)

	require.Len(t, rec.entries, 1)
	entry := rec.entries[0]
	assert.Equal(t, "Tech Innovation", entry.TopStore)
	assert.Equal(t, "Elektronik", entry.Category)
	assert.Equal(t, testNow, entry.Timestamp)
	assert.Equal(t, zeroBaseWeights(), entry.RawWeights)
}

func TestRecommend_NoMatch(t *testing.T) {
	svc := newTestService(&fakeCatalog{stores: mixedCatalog()}, nil)
	rec := &recorder{}

	res, err := svc.Recommend(context.Background(), domain.QueryContext{
		Category: "Elektronik",
		Location: "Bandung",
	}, rec)
	require.NoError(t, err)

	assert.True(t, res.NoMatch)
	assert.Equal(t, NoMatchMessage, res.Message)
	assert.Empty(t, res.Stores)
	assert.Empty(t, rec.entries)
}

func TestRecommend_LogsTopBeforePostFilters(t *testing.T) {
	best := store(1, "Best But Slow", "Elektronik", 5.0, 4, 90, 3, 1, 30, 100)
	fast := store(2, "Quick", "Elektronik", 4.0, 1, 90, 3, 1, 30, 100)

	svc := newTestService(&fakeCatalog{stores: []domain.Store{best, fast}}, nil)
	rec := &recorder{}

	res, err := svc.Recommend(context.Background(), domain.QueryContext{
		Weights: domain.Weights{domain.CriterionRating: 1},
		Filters: domain.Filters{FastDelivery: true},
	}, rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"Quick"}, names(res.Stores))
	assert.Equal(t, []string{"Quick"}, names(res.Top))
	require.Len(t, rec.entries, 1)
	assert.Equal(t, "Best But Slow", rec.entries[0].TopStore)
}

func TestRecommend_FiltersRemoveEverything(t *testing.T) {
	slow := store(1, "Slow", "Elektronik", 4.0, 5, 90, 3, 1, 30, 100)
	svc := newTestService(&fakeCatalog{stores: []domain.Store{slow}}, nil)

	res, err := svc.Recommend(context.Background(), domain.QueryContext{
		Filters: domain.Filters{FastDelivery: true},
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.NoMatch)
	assert.Empty(t, res.Stores)
	assert.Empty(t, res.Top)
	assert.Equal(t, domain.ResultSummary{}, res.Summary)
}

func TestRecommend_DefaultWeightsWhenNoneGiven(t *testing.T) {
	svc := newTestService(&fakeCatalog{stores: mixedCatalog()}, nil)

	res, err := svc.Recommend(context.Background(), domain.QueryContext{}, nil)
	require.NoError(t, err)

	assert.False(t, res.UniformFallback)
	assert.InDelta(t, 0.25, res.NormalizedWeights[domain.CriterionRating], 1e-12)
	assert.Equal(t, 8, res.MatchedCount)
}

func TestRecommend_ExtendedCriteria(t *testing.T) {
	svc := newTestService(&fakeCatalog{stores: mixedCatalog()}, nil)

	res, err := svc.Recommend(context.Background(), domain.QueryContext{
		UserLocation: "bandung",
		Activity:     domain.SinglePreference("Pakaian"),
		Weights: domain.Weights{
			domain.CriterionProximity:     1,
			domain.CriterionActivityMatch: 1,
		},
	}, nil)
	require.NoError(t, err)

	require.NotEmpty(t, res.Stores)
	top := res.Stores[0]
	assert.Equal(t, "Fashion Paradise", top.Name)
	assert.Contains(t, top.Reason, "nearest store to you")
	assert.Contains(t, top.Reason, "matches your preferred category")
	assert.Len(t, res.NormalizedWeights, len(domain.BaseCriteria)+2)
}

func TestRecommend_Errors(t *testing.T) {
	t.Run("invalid weights", func(t *testing.T) {
		cat := &fakeCatalog{stores: mixedCatalog()}
		svc := newTestService(cat, nil)

		_, err := svc.Recommend(context.Background(), domain.QueryContext{
			Weights: domain.Weights{domain.CriterionRating: -2},
		}, nil)
		assert.ErrorIs(t, err, ErrNegativeWeight)
		assert.Equal(t, 0, cat.calls)
	})

	t.Run("unknown criterion", func(t *testing.T) {
		svc := newTestService(&fakeCatalog{stores: mixedCatalog()}, nil)

		_, err := svc.Recommend(context.Background(), domain.QueryContext{
			Weights: domain.Weights{"price": 2},
		}, nil)
		assert.ErrorIs(t, err, ErrUnknownCriterion)
	})

	t.Run("catalog failure", func(t *testing.T) {
		boom := errors.New("boom")
		svc := newTestService(&fakeCatalog{err: boom}, nil)

		_, err := svc.Recommend(context.Background(), domain.QueryContext{}, nil)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := newTestService(&fakeCatalog{stores: mixedCatalog()}, nil)
		_, err := svc.Recommend(ctx, domain.QueryContext{}, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFilterCatalog(t *testing.T) {
	stores := mixedCatalog()

	assert.Len(t, FilterCatalog(stores, "", ""), 8)
	assert.Len(t, FilterCatalog(stores, domain.AnyCategory, domain.AnyLocation), 8)
	assert.Len(t, FilterCatalog(stores, "Elektronik", "any"), 7)
	assert.Len(t, FilterCatalog(stores, "any", "Bandung"), 1)
	assert.Empty(t, FilterCatalog(stores, "elektronik", ""))
}
