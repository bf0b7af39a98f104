package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/symbols"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type SymbolHandler struct {
	symbolService *symbols.Service
	authService   *auth.Service
}

func NewSymbolHandler(symbolService *symbols.Service, authService *auth.Service) *SymbolHandler {
	return &SymbolHandler{symbolService: symbolService, authService: authService}
}

func (h *SymbolHandler) List(c *gin.Context) {
	page, err := h.symbolService.List(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *SymbolHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	symbol, err := h.symbolService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, symbols.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, symbol)
}

func (h *SymbolHandler) Create(c *gin.Context) {
	var req symbols.CreateSymbolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	symbol, err := h.symbolService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, symbols.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "symbol", symbol.ID.String(), "create")
	c.JSON(http.StatusCreated, symbol)
}

func (h *SymbolHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req symbols.UpdateSymbolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	symbol, err := h.symbolService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, symbols.ErrNotFound) {
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

	recordAudit(c, h.authService, "symbol", id.String(), "update")
	c.JSON(http.StatusOK, symbol)
}

func (h *SymbolHandler) ToggleActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	symbol, err := h.symbolService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, symbols.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "symbol", id.String(), "toggle_active")
	c.JSON(http.StatusOK, symbol)
}

func (h *SymbolHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.symbolService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, symbols.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "symbol", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
