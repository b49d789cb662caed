package roles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissionBits(t *testing.T) {
	require.Equal(t, Permission(1), PermissionCreateInstantInvite)
	require.Equal(t, Permission(8), PermissionAdministrator)
	require.Equal(t, Permission(1<<28), PermissionManageRoles)
	require.Equal(t, Permission(1<<40), PermissionModerateMembers)
	require.Equal(t, Permission(1<<46), PermissionSendVoiceMessages)
	require.Equal(t, Permission(1<<49), PermissionSendPolls)
	require.Equal(t, Permission(1<<50), PermissionUseExternalApps)
}

func TestPermissionNames(t *testing.T) {
	tests := []struct {
		perm    Permission
		name    string
		display string
	}{
		{PermissionAdministrator, "administrator", "Administrator"},
		{PermissionManageRoles, "manage_roles", "Manage Roles"},
		{PermissionViewAuditLog, "view_audit_log", "View Audit Log"},
		{PermissionSendTTSMessages, "send_tts_messages", "Send Tts Messages"},
		{PermissionUseExternalApps, "use_external_apps", "Use External Apps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.perm.Name())
			require.Equal(t, tt.display, tt.perm.DisplayName())
		})
	}

	require.Empty(t, Permission(1<<47).Name())
}

func TestEnabledPermissions(t *testing.T) {
	bits := int64(PermissionManageRoles | PermissionKickMembers | PermissionAdministrator)
	bits |= 1 << 47 // unassigned bit

	require.Equal(t, []Permission{PermissionKickMembers, PermissionAdministrator, PermissionManageRoles}, EnabledPermissions(bits))
	require.Empty(t, EnabledPermissions(0))
}

func TestPermissionTable(t *testing.T) {
	perms := definedPermissions()
	require.Len(t, perms, 49)

	for i, perm := range perms {
		require.NotEmpty(t, perm.Name())
		require.Equal(t, Permission(0), perm&(perm-1), "%s must be a single bit", perm.Name())
		if i > 0 {
			require.Greater(t, perm, perms[i-1], "%s out of bit order", perm.Name())
		}
	}
}

// definedPermissions lists the named permissions in table order.
func definedPermissions() []Permission {
	perms := make([]Permission, len(permissionNames))
	for i, entry := range permissionNames {
		perms[i] = entry.perm
	}
	return perms
}
