package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/notifications"
)

type NotificationHandler struct {
	notificationService *notifications.Service
	authService         *auth.Service
}

func NewNotificationHandler(notificationService *notifications.Service, authService *auth.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, authService: authService}
}

func (h *NotificationHandler) List(c *gin.Context) {
	page, err := h.notificationService.List(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *NotificationHandler) ToggleRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.ToggleRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notifications.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "notification", id.String(), "toggle_read")
	c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, notifications.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "notification", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
