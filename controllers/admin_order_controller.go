package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/services"
	"github.com/dendisetiawann/kejora-frontend/utils"
)

type AdminOrderController struct {
	api  *libs.KejoraAPI
	auth *services.AuthService
}

func NewAdminOrderController(api *libs.KejoraAPI, auth *services.AuthService) *AdminOrderController {
	return &AdminOrderController{api: api, auth: auth}
}

type orderView struct {
	models.Order
	Code             string `json:"code"`
	TotalFormatted   string `json:"total_formatted"`
	CreatedFormatted string `json:"created_formatted"`
}

func newOrderView(order models.Order) orderView {
	return orderView{
		Order:            order,
		Code:             order.Code(),
		TotalFormatted:   utils.FormatCurrency(order.Total),
		CreatedFormatted: utils.FormatDateTime(order.CreatedAt),
	}
}

// GetOrders godoc
// @Summary List orders
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/orders [get]
func (ctrl *AdminOrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.api.ListOrders(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to load orders")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Orders fetched",
		"data":    views,
	})
}

// GetOrderByID godoc
// @Summary Order detail
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminOrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.api.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order fetched",
		"data":    newOrderView(*order),
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags admin-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param body body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (ctrl *AdminOrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status must be baru, diproses, selesai or batal"})
		return
	}

	order, err := ctrl.api.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to update order status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
		"data":    newOrderView(*order),
	})
}

// UpdatePaymentStatus godoc
// @Summary Update payment status
// @Tags admin-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param body body models.UpdatePaymentStatusRequest true "New payment status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/payment-status [put]
func (ctrl *AdminOrderController) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment status is required"})
		return
	}

	order, err := ctrl.api.UpdatePaymentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to update payment status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment status updated",
		"data":    newOrderView(*order),
	})
}

// GetDashboard godoc
// @Summary Dashboard summary
// @Description Aggregate order counts and paid revenue for the back-office landing page
// @Tags admin-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/dashboard [get]
func (ctrl *AdminOrderController) GetDashboard(c *gin.Context) {
	orders, err := ctrl.api.ListOrders(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, ctrl.auth, err, "Failed to load dashboard")
		return
	}

	summary := gin.H{
		"total_orders": len(orders),
		"by_status":    map[string]int{},
		"revenue":      0.0,
	}
	byStatus := map[string]int{}
	var revenue float64
	for _, order := range orders {
		byStatus[order.OrderStatus]++
		if order.PaymentStatus == models.PaymentStatusPaid {
			revenue += order.Total
		}
	}
	summary["by_status"] = byStatus
	summary["revenue"] = revenue
	summary["revenue_formatted"] = utils.FormatCurrency(revenue)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dashboard fetched",
		"data":    summary,
	})
}
