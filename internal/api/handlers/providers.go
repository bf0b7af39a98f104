package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/providers"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type ProviderHandler struct {
	providerService *providers.Service
	authService     *auth.Service
}

func NewProviderHandler(providerService *providers.Service, authService *auth.Service) *ProviderHandler {
	return &ProviderHandler{providerService: providerService, authService: authService}
}

func (h *ProviderHandler) ListKeys(c *gin.Context) {
	page, err := h.providerService.List(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateKey mints a new provider key. The raw key appears in this response
// only; the database keeps a hash.
func (h *ProviderHandler) CreateKey(c *gin.Context) {
	var req providers.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.providerService.Create(c.Request.Context(), &req)
	if err != nil {
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "provider_key", resp.Key.ID.String(), "create")
	c.JSON(http.StatusCreated, resp)
}

func (h *ProviderHandler) RevokeKey(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.providerService.Revoke(c.Request.Context(), id); err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "provider_key", id.String(), "revoke")
	c.JSON(http.StatusNoContent, nil)
}
