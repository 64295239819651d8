package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storeRanker/business/history"
	"storeRanker/business/ranking"
	"storeRanker/domain"
	"storeRanker/internal/middleware"
	"storeRanker/pkg/logger"
	"storeRanker/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RankingHandler struct {
		validate       *validator.Validate
		rankingService RankingService
		timeout        time.Duration
		historyLimit   int
	}

	RankingService interface {
		Recommend(ctx context.Context, q domain.QueryContext, history ranking.HistoryRecorder) (domain.RankingResult, error)
	}

	RecommendRequest struct {
		Category            string             `json:"category" validate:"max=64"`
		Location            string             `json:"location" validate:"max=64"`
		UserLocation        string             `json:"user_location" validate:"max=64"`
		PreferredCategories []string           `json:"preferred_categories" validate:"max=20,dive,required,max=64"`
		Weights             map[string]float64 `json:"weights" validate:"omitempty,dive,keys,oneof=rating reviews delivery success complaint promo response proximity activity_match fast_response promo_recent loyalty,endkeys,gte=0"`
		Profile             string             `json:"profile" validate:"max=64"`
		Filters             domain.Filters     `json:"filters"`
	}

	HistoryQuery struct {
		N int `query:"n" validate:"gte=0,lte=100"`
	}
)

func NewRankingHandler(svc RankingService, timeout time.Duration, historyLimit int) *RankingHandler {
	return &RankingHandler{
		validate:       validator.New(),
		rankingService: svc,
		timeout:        timeout,
		historyLimit:   historyLimit,
	}
}

// activityPreference resolves the preferred category list once, here at the boundary.
func activityPreference(categories []string) domain.ActivityPreference {
	switch len(categories) {
	case 0:
		return domain.NoPreference()
	case 1:
		return domain.SinglePreference(strings.TrimSpace(categories[0]))
	default:
		trimmed := make([]string, 0, len(categories))
		for _, c := range categories {
			trimmed = append(trimmed, strings.TrimSpace(c))
		}
		return domain.ManyPreference(trimmed...)
	}
}

func sessionHistory(c echo.Context) (*history.Log, bool) {
	log, ok := c.Get(middleware.ContextHistory).(*history.Log)
	return log, ok && log != nil
}

// POST /api/v1/recommendations
func (h *RankingHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RankingRecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RankingRecommendRequests.Inc()

	log, ok := sessionHistory(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	q := domain.QueryContext{
		Category:     strings.TrimSpace(req.Category),
		Location:     strings.TrimSpace(req.Location),
		UserLocation: strings.TrimSpace(req.UserLocation),
		Activity:     activityPreference(req.PreferredCategories),
		Weights:      toWeights(req.Weights),
		Profile:      strings.TrimSpace(req.Profile),
		Filters:      req.Filters,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.rankingService.Recommend(ctx, q, log)
	if err != nil {
		if errors.Is(err, ranking.ErrUnknownCriterion) || errors.Is(err, ranking.ErrNegativeWeight) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to rank stores", "error", err, "trace_id", ranking.TraceIDFromContext(ctx))
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/history?n=5
func (h *RankingHandler) History(c echo.Context) error {
	log, ok := sessionHistory(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N <= 0 {
		q.N = h.historyLimit
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(log.RecentLogs(q.N)))
}
