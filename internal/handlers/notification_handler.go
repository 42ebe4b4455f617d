package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenderlink_backend/internal/middleware"
	"tenderlink_backend/internal/services"
	"tenderlink_backend/internal/services/dto"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("/unread", h.GetUnreadNotifications)
		notifications.PUT("/:notificationId/read", h.MarkAsRead)
		notifications.PUT("/preferences", h.UpdatePreferences)
	}
}

func (h *NotificationHandler) GetUnreadNotifications(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	response, err := h.notificationService.GetUnreadNotifications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if _, ok := h.RequireUserID(c); !ok {
		return
	}

	notificationID := c.Param("notificationId")

	if err := h.notificationService.MarkNotificationAsRead(notificationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNotificationPreferencesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	prefs := req.ToModel()
	if err := h.notificationService.UpdateNotificationPreferences(userID, prefs); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NotificationPreferencesResponse{
		Message:     "Notification preferences updated",
		Preferences: prefs,
	})
}
