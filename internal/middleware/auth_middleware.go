package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"storeRanker/business/history"
	"storeRanker/pkg/logger"
	"storeRanker/pkg/utils"

	jsonres "storeRanker/pkg/response"

	"github.com/labstack/echo/v4"
)

const (
	// ContextSessionID holds the session id string.
	ContextSessionID = "session_id"
	// ContextHistory holds the session's *history.Log.
	ContextHistory = "history"

	HeaderAdminKey = "X-Admin-Key"
)

// SessionStore looks up the history log of a session.
type SessionStore interface {
	Get(sessionID string) (*history.Log, bool)
}

// SessionMiddleware requires a valid session bearer token whose history log is still open.
func SessionMiddleware(secret string, sessions SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			claims, err := utils.ParseSessionJWT(secret, tokenParts[1])
			if err != nil {
				logger.Debug("rejected session token", "error", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			log, ok := sessions.Get(claims.SessionID)
			if !ok {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Session expired", nil,
				))
			}

			c.Set(ContextSessionID, claims.SessionID)
			c.Set(ContextHistory, log)

			return next(c)
		}
	}
}

// AdminOnly guards the admin routes with a shared key. An empty key closes them.
func AdminOnly(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			given := c.Request().Header.Get(HeaderAdminKey)
			if adminKey == "" || subtle.ConstantTimeCompare([]byte(given), []byte(adminKey)) != 1 {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}
