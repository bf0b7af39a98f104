package auth

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AuditLog struct {
	ID         uuid.UUID `json:"id"`
	AdminID    uuid.UUID `json:"adminId"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	IPAddress  *string   `json:"ipAddress,omitempty"`
	UserAgent  *string   `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Admin *Admin `json:"admin"`
}

// Dashboard roles.
const (
	RoleSuperAdmin = "superadmin"
	RoleEditor     = "editor"
	RoleViewer     = "viewer"
)

// Section permissions gating navigation and mutations.
const (
	PermCommunityRead      = "community:read"
	PermCommunityWrite     = "community:write"
	PermNewsRead           = "news:read"
	PermNewsWrite          = "news:write"
	PermSymbolsRead        = "symbols:read"
	PermSymbolsWrite       = "symbols:write"
	PermNotificationsRead  = "notifications:read"
	PermNotificationsWrite = "notifications:write"
	PermAdsRead            = "ads:read"
	PermAdsWrite           = "ads:write"
	PermAnnouncementsRead  = "announcements:read"
	PermAnnouncementsWrite = "announcements:write"
	PermProvidersRead      = "providers:read"
	PermProvidersWrite     = "providers:write"
	PermReportsRead        = "reports:read"
	PermReportsWrite       = "reports:write"
	PermStatsRead          = "stats:read"
	PermAuditRead          = "audit:read"
)

var AllPermissions = []string{
	PermCommunityRead, PermCommunityWrite,
	PermNewsRead, PermNewsWrite,
	PermSymbolsRead, PermSymbolsWrite,
	PermNotificationsRead, PermNotificationsWrite,
	PermAdsRead, PermAdsWrite,
	PermAnnouncementsRead, PermAnnouncementsWrite,
	PermProvidersRead, PermProvidersWrite,
	PermReportsRead, PermReportsWrite,
	PermStatsRead, PermAuditRead,
}

var readPermissions = []string{
	PermCommunityRead, PermNewsRead, PermSymbolsRead,
	PermNotificationsRead, PermAdsRead, PermAnnouncementsRead,
	PermReportsRead, PermStatsRead,
}

var editorPermissions = append(append([]string{},
	readPermissions...),
	PermCommunityWrite, PermNewsWrite, PermSymbolsWrite,
	PermNotificationsWrite, PermAdsWrite, PermAnnouncementsWrite,
	PermReportsWrite,
)

// RolePermissions maps a role onto its permission set.
var RolePermissions = map[string][]string{
	RoleSuperAdmin: AllPermissions,
	RoleEditor:     editorPermissions,
	RoleViewer:     readPermissions,
}

func HasPermission(role, permission string) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
