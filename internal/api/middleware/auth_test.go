package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func createTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestGetAdminID_Valid(t *testing.T) {
	c, _ := createTestContext()
	expectedID := uuid.New()
	c.Set(ContextAdminID, expectedID)

	id, ok := GetAdminID(c)
	if !ok {
		t.Error("GetAdminID should return true when admin_id is set")
	}
	if id != expectedID {
		t.Errorf("GetAdminID returned %v, expected %v", id, expectedID)
	}
}

func TestGetAdminID_NotSet(t *testing.T) {
	c, _ := createTestContext()

	_, ok := GetAdminID(c)
	if ok {
		t.Error("GetAdminID should return false when admin_id is not set")
	}
}

func TestGetAdminID_InvalidType(t *testing.T) {
	c, _ := createTestContext()
	c.Set(ContextAdminID, "not-a-uuid-value")

	_, ok := GetAdminID(c)
	if ok {
		t.Error("GetAdminID should return false when admin_id has invalid type")
	}
}

func TestGetRole_Valid(t *testing.T) {
	c, _ := createTestContext()
	c.Set(ContextRole, auth.RoleEditor)

	role, ok := GetRole(c)
	if !ok {
		t.Error("GetRole should return true when role is set")
	}
	if role != auth.RoleEditor {
		t.Errorf("GetRole returned %q, expected %q", role, auth.RoleEditor)
	}
}

func TestGetRole_NotSet(t *testing.T) {
	c, _ := createTestContext()

	_, ok := GetRole(c)
	if ok {
		t.Error("GetRole should return false when role is not set")
	}
}

func TestRequirePermission_ViewerBlockedFromWrites(t *testing.T) {
	m := &AuthMiddleware{}
	c, w := createTestContext()
	c.Set(ContextRole, auth.RoleViewer)

	m.RequirePermission(auth.PermNewsWrite)(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("viewer writing news: status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRequirePermission_EditorAllowedToWrite(t *testing.T) {
	m := &AuthMiddleware{}
	c, w := createTestContext()
	c.Set(ContextRole, auth.RoleEditor)

	m.RequirePermission(auth.PermNewsWrite)(c)

	if c.IsAborted() {
		t.Error("editor should pass the news:write check")
	}
	if w.Code == http.StatusForbidden {
		t.Error("editor should not receive 403")
	}
}

func TestRequirePermission_NoRole(t *testing.T) {
	m := &AuthMiddleware{}
	c, w := createTestContext()

	m.RequirePermission(auth.PermNewsRead)(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("missing role: status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(nil)
	c, w := createTestContext()

	m.Authenticate()(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(nil)
	c, w := createTestContext()
	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	m.Authenticate()(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer header: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
