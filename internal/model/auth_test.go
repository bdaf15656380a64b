package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizationContextCapabilities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		auth      AuthorizationContext
		canAdd    bool
		canEdit   bool
		canDelete bool
	}{
		{
			name:      "admin by short group id",
			auth:      AuthorizationContext{GroupID: "a"},
			canAdd:    true,
			canEdit:   true,
			canDelete: true,
		},
		{
			name:      "admin group",
			auth:      AuthorizationContext{GroupID: "admin"},
			canAdd:    true,
			canEdit:   true,
			canDelete: true,
		},
		{
			name: "add access",
			auth: AuthorizationContext{
				GroupID:     "store",
				Permissions: map[Resource]Access{ResourceDepartmentMaster: AccessAdd},
			},
			canAdd:    true,
			canEdit:   true,
			canDelete: true,
		},
		{
			name: "edit access",
			auth: AuthorizationContext{
				GroupID:     "store",
				Permissions: map[Resource]Access{ResourceDepartmentMaster: AccessEdit},
			},
			canEdit: true,
		},
		{
			name: "access granted on another resource only",
			auth: AuthorizationContext{
				GroupID:     "store",
				Permissions: map[Resource]Access{ResourceStockIn: AccessAdd},
			},
		},
		{
			name: "no permissions",
			auth: AuthorizationContext{GroupID: "viewer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.canAdd, tt.auth.CanAdd(ResourceDepartmentMaster))
			assert.Equal(t, tt.canEdit, tt.auth.CanEdit(ResourceDepartmentMaster))
			assert.Equal(t, tt.canDelete, tt.auth.CanDelete(ResourceDepartmentMaster))
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aina", AuthorizationContext{UserID: "u1", UserName: "aina"}.DisplayName())
	assert.Equal(t, "u1", AuthorizationContext{UserID: "u1"}.DisplayName())
	assert.Equal(t, "Unknown", AuthorizationContext{}.DisplayName())
}
