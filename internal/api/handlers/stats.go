package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/stats"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/metadata"
)

type StatsHandler struct {
	statsService *stats.Service
}

func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

type MetadataHandler struct {
	provider *metadata.Provider
}

func NewMetadataHandler(provider *metadata.Provider) *MetadataHandler {
	return &MetadataHandler{provider: provider}
}

// EnumValues serves the allowed values for an enum column so filter dropdowns
// stay in sync with the schema.
func (h *MetadataHandler) EnumValues(c *gin.Context) {
	table := c.Param("table")
	column := c.Param("column")

	values, err := h.provider.AllowedValues(c.Request.Context(), table, column)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"values": values})
}
