package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/services"
)

type OrderSuccessController struct {
	success *services.OrderSuccessService
}

func NewOrderSuccessController(success *services.OrderSuccessService) *OrderSuccessController {
	return &OrderSuccessController{success: success}
}

// GetSuccess godoc
// @Summary Order success state
// @Description Show the submitted order and start payment reconciliation when reaching the page. While payment is unverified the state keeps converging in the background, so the page polls this endpoint
// @Tags storefront
// @Produce json
// @Param status query string false "Payment provider redirect status"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/success [get]
func (ctrl *OrderSuccessController) GetSuccess(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	providerStatus := c.Query("status")

	var view *services.SuccessView
	var err error
	if ctrl.success.HasWatch(sessionID) && providerStatus == "" {
		view, err = ctrl.success.State(sessionID)
	} else {
		view, err = ctrl.success.StartWatch(c.Request.Context(), sessionID, providerStatus)
	}
	if err != nil {
		if errors.Is(err, services.ErrNoActiveOrder) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":  false,
				"message":  "No active order",
				"redirect": "/order",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order state fetched",
		"data":    view,
	})
}

// BackToMenu godoc
// @Summary Leave the success page
// @Description Stop reconciliation, drop the stored order and return to the menu
// @Tags storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /order/success/back [post]
func (ctrl *OrderSuccessController) BackToMenu(c *gin.Context) {
	if err := ctrl.success.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to clear order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Order cleared",
		"redirect": "/order",
	})
}
