package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/announcements"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type AnnouncementHandler struct {
	announcementService *announcements.Service
	authService         *auth.Service
}

func NewAnnouncementHandler(announcementService *announcements.Service, authService *auth.Service) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService, authService: authService}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	page, err := h.announcementService.List(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	announcement, err := h.announcementService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, announcements.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req announcements.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), &req)
	if err != nil {
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "announcement", announcement.ID.String(), "create")
	c.JSON(http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req announcements.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, announcements.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "announcement", id.String(), "update")
	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) ToggleActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	announcement, err := h.announcementService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, announcements.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "announcement", id.String(), "toggle_active")
	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, announcements.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "announcement", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
