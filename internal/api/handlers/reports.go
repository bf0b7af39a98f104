package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/reports"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
)

type ReportHandler struct {
	reportService *reports.Service
	authService   *auth.Service
}

func NewReportHandler(reportService *reports.Service, authService *auth.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService, authService: authService}
}

func (h *ReportHandler) ListBugReports(c *gin.Context) {
	page, err := h.reportService.ListBugReports(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ReportHandler) UpdateBugReportStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reports.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.UpdateBugReportStatus(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
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

	recordAudit(c, h.authService, "bug_report", id.String(), "update_status")
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ListPostReports(c *gin.Context) {
	page, err := h.reportService.ListPostReports(c.Request.Context(), listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ReportHandler) UpdatePostReportStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reports.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.UpdatePostReportStatus(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, reports.ErrNotFound) {
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

	recordAudit(c, h.authService, "post_report", id.String(), "update_status")
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) DeleteBugReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reportService.DeleteBugReport(c.Request.Context(), id); err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "bug_report", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}

func (h *ReportHandler) DeletePostReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reportService.DeletePostReport(c.Request.Context(), id); err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordAudit(c, h.authService, "post_report", id.String(), "delete")
	c.JSON(http.StatusNoContent, nil)
}
