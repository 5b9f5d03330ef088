package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/services"
	"github.com/dendisetiawann/kejora-frontend/utils"
)

type CartController struct {
	checkout *services.CheckoutService
}

func NewCartController(checkout *services.CheckoutService) *CartController {
	return &CartController{checkout: checkout}
}

type cartView struct {
	Draft          *models.CheckoutDraft `json:"draft"`
	Total          float64               `json:"total"`
	TotalFormatted string                `json:"total_formatted"`
}

func newCartView(draft *models.CheckoutDraft) cartView {
	view := cartView{Draft: draft}
	if draft != nil {
		view.Total = draft.Total()
		view.TotalFormatted = utils.FormatCurrency(view.Total)
	}
	return view
}

// StartCart godoc
// @Summary Start a cart
// @Description Record the customer name and table number for this session's draft
// @Tags storefront
// @Accept json
// @Produce json
// @Param body body models.StartCartRequest true "Customer identity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/cart [post]
func (ctrl *CartController) StartCart(c *gin.Context) {
	var req models.StartCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Customer name and table number are required",
		})
		return
	}

	draft, err := ctrl.checkout.StartCart(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to start cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart started",
		"data":    newCartView(draft),
	})
}

// GetCart godoc
// @Summary Current cart
// @Tags storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /order/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	draft, err := ctrl.checkout.Cart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart fetched",
		"data":    newCartView(draft),
	})
}

// AddItem godoc
// @Summary Add a menu item to the cart
// @Description Validate the menu upstream and add it, or raise the quantity of an existing line
// @Tags storefront
// @Accept json
// @Produce json
// @Param body body models.AddCartItemRequest true "Menu item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /order/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Menu ID and quantity are required"})
		return
	}

	draft, err := ctrl.checkout.AddItem(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrMenuUnavailable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Menu is not available"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": libs.ExtractErrorMessage(err, "Failed to add item"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item added",
		"data":    newCartView(draft),
	})
}

// UpdateItem godoc
// @Summary Change an item quantity
// @Description Set the quantity of a cart line. Quantity zero removes the line
// @Tags storefront
// @Accept json
// @Produce json
// @Param menuId path int true "Menu ID"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /order/cart/items/{menuId} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	menuID, err := strconv.Atoi(c.Param("menuId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid menu ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity is required"})
		return
	}

	draft, err := ctrl.checkout.UpdateItem(c.Request.Context(), middleware.SessionID(c), menuID, req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item is not in the cart"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item updated",
		"data":    newCartView(draft),
	})
}

// ResetCart godoc
// @Summary Discard the cart
// @Tags storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /order/cart [delete]
func (ctrl *CartController) ResetCart(c *gin.Context) {
	if err := ctrl.checkout.Reset(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to reset cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
	})
}
