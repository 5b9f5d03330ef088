package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/services"
)

// respondUpstreamError maps an upstream API failure onto our response. A
// rejected token discards the stored one and points the caller at login;
// other API errors keep their status with the upstream message when present.
func respondUpstreamError(c *gin.Context, auth *services.AuthService, err error, fallback string) {
	if libs.IsUnauthorized(err) {
		if discardErr := auth.DiscardToken(c.Request.Context(), middleware.SessionID(c)); discardErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to discard token"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":  false,
			"message":  libs.ExtractErrorMessage(err, "Invalid or expired token"),
			"redirect": "/admin/login",
		})
		return
	}

	status := http.StatusBadGateway
	var apiErr *libs.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": libs.ExtractErrorMessage(err, fallback),
	})
}
