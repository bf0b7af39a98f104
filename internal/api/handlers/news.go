package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/news"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type NewsHandler struct {
	newsService *news.Service
	authService *auth.Service
}

func NewNewsHandler(newsService *news.Service, authService *auth.Service) *NewsHandler {
	return &NewsHandler{newsService: newsService, authService: authService}
}

func (h *NewsHandler) List(c *gin.Context) {
	page, err := h.newsService.List(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req news.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.newsService.Create(c.Request.Context(), &req)
	if err != nil {
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "news_article", article.ID.String(), "create")
	c.JSON(http.StatusCreated, article)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req news.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.newsService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
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

	recordAudit(c, h.authService, "news_article", id.String(), "update")
	c.JSON(http.StatusOK, article)
}

func (h *NewsHandler) ToggleActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := h.newsService.ToggleActive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "news_article", id.String(), "toggle_active")
	c.JSON(http.StatusOK, article)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, news.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "news_article", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
