package rest

import (
	"net/http"
	"time"

	"storeRanker/business/history"
	"storeRanker/pkg/logger"
	"storeRanker/pkg/metrics"
	"storeRanker/pkg/utils"

	"github.com/labstack/echo/v4"
)

// SessionOpener creates the history log for a new session.
type SessionOpener interface {
	Open(sessionID string) *history.Log
}

type SessionHandler struct {
	sessions SessionOpener
	secret   string
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionHandler(sessions SessionOpener, secret string, ttl time.Duration) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// POST /api/v1/sessions
func (h *SessionHandler) Create(c echo.Context) error {
	sessionID := utils.NewSessionID()

	token, expiresAt, err := h.issueToken(sessionID)
	if err != nil {
		logger.Error("Failed to issue session token", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to create session"})
	}

	h.sessions.Open(sessionID)
	metrics.SessionsIssued.Inc()

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "session created",
		"session": SessionResponse{
			SessionID: sessionID,
			Token:     token,
			ExpiresAt: expiresAt,
		},
	})
}

func (h *SessionHandler) issueToken(sessionID string) (string, time.Time, error) {
	return utils.GenerateSessionJWT(h.secret, sessionID, h.ttl, h.now())
}
