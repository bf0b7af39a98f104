package auth

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       string
		permission string
		want       bool
	}{
		{RoleSuperAdmin, PermProvidersWrite, true},
		{RoleSuperAdmin, PermAuditRead, true},
		{RoleEditor, PermNewsWrite, true},
		{RoleEditor, PermProvidersRead, false},
		{RoleEditor, PermAuditRead, false},
		{RoleViewer, PermNewsRead, true},
		{RoleViewer, PermNewsWrite, false},
		{RoleViewer, PermCommunityWrite, false},
		{"unknown", PermNewsRead, false},
	}

	for _, tc := range cases {
		if got := HasPermission(tc.role, tc.permission); got != tc.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", tc.role, tc.permission, got, tc.want)
		}
	}
}

// Every role's permission set must be a subset of AllPermissions.
func TestRolePermissionsAreKnown(t *testing.T) {
	known := make(map[string]bool, len(AllPermissions))
	for _, p := range AllPermissions {
		known[p] = true
	}

	for role, perms := range RolePermissions {
		for _, p := range perms {
			if !known[p] {
				t.Errorf("role %s carries unknown permission %q", role, p)
			}
		}
	}
}
