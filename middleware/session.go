package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/utils"
)

type ctxKey string

const (
	SessionCookie = "kejora_session"

	sessionCtxKey  ctxKey = "kejora_session_id"
	sessionGinKey         = "session_id"
	cookieLifetime        = 60 * 60 * 24 * 30
)

// SessionMiddleware assigns every browser a signed session identifier. The
// identifier scopes the checkout draft, order-success payload, and admin
// token stores.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if claims, err := utils.ValidateSessionToken(cookie); err == nil {
				sessionID = claims.SessionID
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			token, err := utils.GenerateSessionToken(sessionID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Success: false,
					Message: "Failed to start session",
				})
				c.Abort()
				return
			}
			c.SetCookie(SessionCookie, token, cookieLifetime, "/", "", false, true)
		}

		c.Set(sessionGinKey, sessionID)
		ctx := context.WithValue(c.Request.Context(), sessionCtxKey, sessionID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SessionID returns the session identifier assigned by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionGinKey)
}

// SessionFromContext extracts the session identifier from a request context,
// for code that runs below the gin layer (e.g. the admin token injector).
func SessionFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionCtxKey).(string); ok {
		return id
	}
	return ""
}

// SessionContext returns a long-lived context carrying the session
// identifier, for background work that outlives the request that spawned
// it. Token resolution through SessionFromContext works on it the same way
// it does on a request context.
func SessionContext(sessionID string) context.Context {
	return context.WithValue(context.Background(), sessionCtxKey, sessionID)
}
