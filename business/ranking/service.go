package ranking

import (
	"context"
	"fmt"
	"time"

	"storeRanker/domain"
	"storeRanker/pkg/logger"
)

// NoMatchMessage is shown when the category/location pre-filter leaves nothing to rank.
const NoMatchMessage = "no stores match your filters"

// ---- Repository interfaces ----

type CatalogProvider interface {
	LoadCatalog(ctx context.Context) ([]domain.Store, error)
}

// HistoryRecorder receives one entry per ranked query. Each session owns its own recorder.
type HistoryRecorder interface {
	LogQuery(entry domain.SearchLogEntry)
}

// ---- Usecase / Service ----

type RankingService struct {
	catalog     CatalogProvider
	profileRepo ProfileRepository
	defaultCfg  Config
	now         func() time.Time
}

func NewRankingService(
	catalog CatalogProvider,
	profileRepo ProfileRepository,
	defaultCfg Config,
) *RankingService {
	return &RankingService{
		catalog:     catalog,
		profileRepo: profileRepo,
		defaultCfg:  defaultCfg,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for the recent-promo indicator and log stamps.
func (s *RankingService) WithClock(now func() time.Time) *RankingService {
	s.now = now
	return s
}

// Recommend runs one query: pre-filter the catalog, normalize weights, score, explain, rank,
// record the top store in history, then apply the post filters.
func (s *RankingService) Recommend(
	ctx context.Context,
	q domain.QueryContext,
	history HistoryRecorder,
) (domain.RankingResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.RankingResult{}, fmt.Errorf("context error: %w", err)
	}
	if err := ValidateRaw(q.Weights); err != nil {
		return domain.RankingResult{}, err
	}

	now := s.now()

	// 1) catalog + category/location pre-filter
	stores, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("load catalog: %w", err)
	}
	candidates := FilterCatalog(stores, q.Category, q.Location)

	// 2) weights
	raw, source := s.loadRawWeights(ctx, q)
	normalized := NormalizeWeights(raw)
	fallback := IsUniformFallback(raw)
	if fallback {
		UniformFallbackTotal.Inc()
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("ranking_query",
		"trace_id", tid,
		"category", q.Category,
		"location", q.Location,
		"user_location", q.UserLocation,
		"weight_source", source,
		"uniform_fallback", fallback,
		"candidate_count", len(candidates),
	)

	result := domain.RankingResult{
		NormalizedWeights: normalized,
		UniformFallback:   fallback,
		MatchedCount:      len(candidates),
		Top:               []domain.ScoredStore{},
		Stores:            []domain.ScoredStore{},
		GeneratedAt:       now,
	}

	if len(candidates) == 0 {
		RankingQueriesTotal.WithLabelValues("no_match", source).Inc()
		result.NoMatch = true
		result.Message = NoMatchMessage
		return result, nil
	}

	// 3) score + explain
	scored, err := Score(candidates, normalized, q.UserLocation, q.Activity, now)
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("score stores: %w", err)
	}
	for i := range scored {
		scored[i].Reason = Explain(scored[i])
	}

	// 4) rank, log the winner before post filters, then filter
	ranked := Rank(scored)

	if history != nil {
		history.LogQuery(domain.SearchLogEntry{
			Timestamp:         now,
			Category:          q.Category,
			Location:          q.Location,
			RawWeights:        raw.Clone(),
			NormalizedWeights: normalized.Clone(),
			TopStore:          ranked[0].Name,
		})
	}

	display := ApplyFilters(ranked, q.Filters)

	topN := s.defaultCfg.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > len(display) {
		topN = len(display)
	}

	result.Stores = display
	result.Top = display[:topN]
	result.Summary = Summarize(display)

	RankingQueriesTotal.WithLabelValues("ranked", source).Inc()

	logger.Debug("ranking_result",
		"trace_id", tid,
		"top_store", ranked[0].Name,
		"top_score", ranked[0].Total,
		"displayed", len(display),
	)

	return result, nil
}

// FilterCatalog keeps stores whose category and location equal the given values exactly.
// An empty value or "any" disables that filter.
func FilterCatalog(stores []domain.Store, category, location string) []domain.Store {
	out := make([]domain.Store, 0, len(stores))
	for _, st := range stores {
		if category != "" && category != domain.AnyCategory && st.Category != category {
			continue
		}
		if location != "" && location != domain.AnyLocation && st.Location != location {
			continue
		}
		out = append(out, st)
	}
	return out
}
