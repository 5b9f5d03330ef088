package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate against the café API and bind the token to the current session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Username and password are required",
		})
		return
	}

	result, err := ctrl.auth.Login(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result.User,
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Drop the stored token and stop background order polling for this session
// @Tags auth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.auth.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Logout failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Logout successful",
		"redirect": "/admin/login",
	})
}

// Me godoc
// @Summary Current admin profile
// @Description Fetch the profile of the admin bound to this session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.auth.Me(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile fetched",
		"data":    user,
	})
}
