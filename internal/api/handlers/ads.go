package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/ads"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type AdHandler struct {
	adService   *ads.Service
	authService *auth.Service
}

func NewAdHandler(adService *ads.Service, authService *auth.Service) *AdHandler {
	return &AdHandler{adService: adService, authService: authService}
}

func (h *AdHandler) List(c *gin.Context) {
	page, err := h.adService.List(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *AdHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ad, err := h.adService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ads.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) Create(c *gin.Context) {
	var req ads.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.adService.Create(c.Request.Context(), &req)
	if err != nil {
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "ad", ad.ID.String(), "create")
	c.JSON(http.StatusCreated, ad)
}

func (h *AdHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ads.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ad, err := h.adService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ads.ErrNotFound) {
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

	recordAudit(c, h.authService, "ad", id.String(), "update")
	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) ToggleActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ad, err := h.adService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ads.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "ad", id.String(), "toggle_active")
	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.adService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ads.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "ad", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
