package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/middleware"
	"github.com/dendisetiawann/kejora-frontend/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// engine returns the running engine for this admin session. The admin
// middleware starts one on staff-area entry, so a miss means the session
// never passed through it.
func (ctrl *NotificationController) engine(c *gin.Context) (*services.NotificationEngine, bool) {
	engine, ok := ctrl.notifications.Engine(middleware.SessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No notification state for this session"})
	}
	return engine, ok
}

// GetState godoc
// @Summary Notification state
// @Description Unread count, banner and sound flags, and the latest alerting order
// @Tags admin-notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/notifications [get]
func (ctrl *NotificationController) GetState(c *gin.Context) {
	engine, ok := ctrl.engine(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification state fetched",
		"data":    engine.State(),
	})
}

// Dismiss godoc
// @Summary Dismiss the banner
// @Description Hide the new-order banner and stop the sound, keeping the unread count
// @Tags admin-notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/notifications/dismiss [post]
func (ctrl *NotificationController) Dismiss(c *gin.Context) {
	engine, ok := ctrl.engine(c)
	if !ok {
		return
	}
	engine.DismissBanner()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Banner dismissed",
		"data":    engine.State(),
	})
}

// ClearUnread godoc
// @Summary Clear unread notifications
// @Description Reset the unread count after the admin opened the order list
// @Tags admin-notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/notifications/clear [post]
func (ctrl *NotificationController) ClearUnread(c *gin.Context) {
	engine, ok := ctrl.engine(c)
	if !ok {
		return
	}
	engine.ClearUnread()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Unread cleared",
		"data":    engine.State(),
	})
}

// Refresh godoc
// @Summary Poll orders now
// @Description Trigger an immediate poll instead of waiting for the next tick
// @Tags admin-notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/notifications/refresh [post]
func (ctrl *NotificationController) Refresh(c *gin.Context) {
	engine, ok := ctrl.engine(c)
	if !ok {
		return
	}
	engine.RefreshOrders(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Orders refreshed",
		"data":    engine.State(),
	})
}

// Leave godoc
// @Summary Leave the staff area
// @Description Stop background polling; the next staff-area request starts over from a fresh baseline
// @Tags admin-notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/notifications/leave [post]
func (ctrl *NotificationController) Leave(c *gin.Context) {
	ctrl.notifications.Stop(middleware.SessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Polling stopped",
	})
}
