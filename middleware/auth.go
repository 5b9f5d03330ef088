package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/services"
)

// AdminMiddleware guards the staff area: the session must hold an upstream
// bearer token, and entering the area starts the session's order poller.
func AdminMiddleware(auth *services.AuthService, notifications *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := SessionID(c)

		hasToken, err := auth.HasToken(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to read session",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}
		if !hasToken {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success":  false,
				"message":  "Authorization required",
				"redirect": "/admin/login",
			})
			c.Abort()
			return
		}

		// The poller outlives this request, so it gets its own context
		// carrying the session identity for upstream token resolution.
		notifications.EnsureStarted(SessionContext(sessionID), sessionID)
		c.Next()
	}
}
