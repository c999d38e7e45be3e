package authz

import "go-bms/internal/domain"

// Rule grants one (resource, action) pair to a role. The full table
// below is the single source of truth for route-level permissions,
// replacing scattered inline role comparisons.
type Rule struct {
	Role     domain.Role
	Resource string
	Action   string
}

var Policies = []Rule{
	// company
	{domain.RoleEmploy, "company", "read"},
	{domain.RoleSeniorEmploy, "company", "read"},
	{domain.RoleOwner, "company", "read"},
	{domain.RoleUncategorized, "company", "create"},
	{domain.RoleSeniorEmploy, "company", "update"},
	{domain.RoleOwner, "company", "update"},
	{domain.RoleOwner, "company", "delete"},

	// clients
	{domain.RoleEmploy, "client", "read"},
	{domain.RoleSeniorEmploy, "client", "read"},
	{domain.RoleOwner, "client", "read"},
	{domain.RoleEmploy, "client", "create"},
	{domain.RoleSeniorEmploy, "client", "create"},
	{domain.RoleOwner, "client", "create"},
	{domain.RoleEmploy, "client", "update"},
	{domain.RoleSeniorEmploy, "client", "update"},
	{domain.RoleOwner, "client", "update"},
	{domain.RoleSeniorEmploy, "client", "delete"},
	{domain.RoleOwner, "client", "delete"},

	// products
	{domain.RoleEmploy, "product", "read"},
	{domain.RoleSeniorEmploy, "product", "read"},
	{domain.RoleOwner, "product", "read"},
	{domain.RoleEmploy, "product", "create"},
	{domain.RoleSeniorEmploy, "product", "create"},
	{domain.RoleOwner, "product", "create"},
	{domain.RoleEmploy, "product", "update"},
	{domain.RoleSeniorEmploy, "product", "update"},
	{domain.RoleOwner, "product", "update"},
	{domain.RoleSeniorEmploy, "product", "delete"},
	{domain.RoleOwner, "product", "delete"},

	// purchases
	{domain.RoleEmploy, "purchase", "read"},
	{domain.RoleSeniorEmploy, "purchase", "read"},
	{domain.RoleOwner, "purchase", "read"},
	{domain.RoleEmploy, "purchase", "create"},
	{domain.RoleSeniorEmploy, "purchase", "create"},
	{domain.RoleOwner, "purchase", "create"},
	{domain.RoleEmploy, "purchase", "update"},
	{domain.RoleSeniorEmploy, "purchase", "update"},
	{domain.RoleOwner, "purchase", "update"},
	{domain.RoleSeniorEmploy, "purchase", "delete"},
	{domain.RoleOwner, "purchase", "delete"},

	// accountant
	{domain.RoleEmploy, "accountant", "read"},
	{domain.RoleSeniorEmploy, "accountant", "read"},
	{domain.RoleOwner, "accountant", "read"},
	{domain.RoleOwner, "accountant", "create"},
	{domain.RoleOwner, "accountant", "update"},
	{domain.RoleOwner, "accountant", "delete"},
}
