package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/api/middleware"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
)

func listParams(c *gin.Context) listquery.Params {
	return listquery.ParamsFromQuery(c.Request.URL.Query())
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// recordAudit stamps one audit entry for a completed mutation. The admin id
// is always present behind the auth middleware.
func recordAudit(c *gin.Context, authService *auth.Service, entityType, entityID, action string) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return
	}

	var ip, ua *string
	if v := middleware.GetIPAddress(c); v != "" {
		ip = &v
	}
	if v := middleware.GetUserAgent(c); v != "" {
		ua = &v
	}

	authService.RecordAudit(c.Request.Context(), adminID, entityType, entityID, action, ip, ua)
}
