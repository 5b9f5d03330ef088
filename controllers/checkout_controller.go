package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/services"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// GetCheckout godoc
// @Summary Checkout summary
// @Description Show the draft with its total ahead of submission
// @Tags storefront
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	draft, err := ctrl.checkout.Cart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load checkout"})
		return
	}
	if draft == nil || len(draft.Items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success":  false,
			"message":  "Cart is empty",
			"redirect": "/order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Checkout summary fetched",
		"data":    newCartView(draft),
	})
}

// SetOptions godoc
// @Summary Set checkout options
// @Description Choose the payment method and an optional order note
// @Tags storefront
// @Accept json
// @Produce json
// @Param body body models.CheckoutOptionsRequest true "Payment method and note"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/checkout/options [put]
func (ctrl *CheckoutController) SetOptions(c *gin.Context) {
	var req models.CheckoutOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment method must be cash or qris"})
		return
	}

	draft, err := ctrl.checkout.SetOptions(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart is empty", "redirect": "/order"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save checkout options"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Checkout options saved",
		"data":    newCartView(draft),
	})
}

// Submit godoc
// @Summary Submit the order
// @Description Place the order upstream, clear the draft and hand off to the success page
// @Tags storefront
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /order/checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	payload, err := ctrl.checkout.Submit(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty", "redirect": "/order"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": libs.ExtractErrorMessage(err, "Failed to place order"),
		})
		return
	}

	redirect := "/order/success"
	if payload.PaymentMethod == models.PaymentMethodQRIS && payload.SnapToken != "" {
		// QRIS orders carry a payment token, the success page renders the QR for it.
		redirect = "/order/success?method=qris"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Order placed",
		"data":     payload,
		"redirect": redirect,
	})
}
