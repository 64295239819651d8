package rest

import (
	"context"
	"errors"
	"net/http"

	"storeRanker/business/ranking"
	"storeRanker/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	GetProfile(ctx context.Context, name string) (domain.RankingProfile, error)
	SaveProfile(ctx context.Context, name string, raw domain.Weights) (domain.RankingProfile, error)
}

type RankingAdminHandler struct {
	profiles ProfileService
	validate *validator.Validate
}

func NewRankingAdminHandler(profiles ProfileService) *RankingAdminHandler {
	return &RankingAdminHandler{
		profiles: profiles,
		validate: validator.New(),
	}
}

// PUT /api/v1/admin/ranking/profile
// body: { "name": "speed", "weights": { "delivery": 5, "fast_response": 2 } }
type upsertProfileRequest struct {
	Name    string             `json:"name" validate:"required,max=64"`
	Weights map[string]float64 `json:"weights" validate:"required,min=1,dive,keys,oneof=rating reviews delivery success complaint promo response proximity activity_match fast_response promo_recent loyalty,endkeys,gte=0"`
}

func profileErrorStatus(err error) int {
	switch {
	case errors.Is(err, ranking.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ranking.ErrProfilesDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, ranking.ErrProfileName),
		errors.Is(err, ranking.ErrUnknownCriterion),
		errors.Is(err, ranking.ErrNegativeWeight):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GET /api/v1/admin/ranking/profile?name=speed
func (h *RankingAdminHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.profiles.GetProfile(ctx, c.QueryParam("name"))
	if err != nil {
		return c.JSON(profileErrorStatus(err), echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *RankingAdminHandler) UpsertProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var body upsertProfileRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	profile, err := h.profiles.SaveProfile(ctx, body.Name, toWeights(body.Weights))
	if err != nil {
		return c.JSON(profileErrorStatus(err), echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"profile": profile,
	})
}
