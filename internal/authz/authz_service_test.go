package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bms/internal/domain"
)

func TestEnforce(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		// Only account holders without a company may found one.
		{domain.RoleUncategorized, "company", "create", true},
		{domain.RoleOwner, "company", "create", false},
		{domain.RoleEmploy, "company", "create", false},

		// Deleting the company is the owner's call alone.
		{domain.RoleOwner, "company", "delete", true},
		{domain.RoleSeniorEmploy, "company", "delete", false},
		{domain.RoleEmploy, "company", "delete", false},

		{domain.RoleEmploy, "company", "read", true},
		{domain.RoleEmploy, "company", "update", false},
		{domain.RoleSeniorEmploy, "company", "update", true},

		{domain.RoleEmploy, "client", "create", true},
		{domain.RoleEmploy, "client", "delete", false},
		{domain.RoleSeniorEmploy, "client", "delete", true},

		{domain.RoleEmploy, "product", "update", true},
		{domain.RoleEmploy, "purchase", "create", true},
		{domain.RoleUncategorized, "purchase", "create", false},

		{domain.RoleEmploy, "accountant", "read", true},
		{domain.RoleEmploy, "accountant", "create", false},
		{domain.RoleSeniorEmploy, "accountant", "delete", false},
		{domain.RoleOwner, "accountant", "create", true},
		{domain.RoleOwner, "accountant", "delete", true},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, allowed, "%s %s %s", tt.role, tt.resource, tt.action)
	}
}
