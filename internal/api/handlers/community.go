package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/community"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type CommunityHandler struct {
	communityService *community.Service
	authService      *auth.Service
}

func NewCommunityHandler(communityService *community.Service, authService *auth.Service) *CommunityHandler {
	return &CommunityHandler{communityService: communityService, authService: authService}
}

func (h *CommunityHandler) ListUsers(c *gin.Context) {
	page, err := h.communityService.ListUsers(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *CommunityHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.communityService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, community.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *CommunityHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req community.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.communityService.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, community.ErrNotFound) {
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

	recordAudit(c, h.authService, "user", id.String(), "update")
	c.JSON(http.StatusOK, user)
}

func (h *CommunityHandler) ToggleSuspendUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.communityService.ToggleSuspend(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, community.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "user", id.String(), "toggle_suspend")
	c.JSON(http.StatusOK, user)
}

func (h *CommunityHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.communityService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, community.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "user", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}

func (h *CommunityHandler) ListPosts(c *gin.Context) {
	page, err := h.communityService.ListPosts(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *CommunityHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.communityService.DeletePost(c.Request.Context(), id); err != nil {
		if errors.Is(err, community.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "post", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}

func (h *CommunityHandler) ListComments(c *gin.Context) {
	page, err := h.communityService.ListComments(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.communityService.DeleteComment(c.Request.Context(), id); err != nil {
		if errors.Is(err, community.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "comment", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
