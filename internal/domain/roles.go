package domain

// Role is the flat role enum carried on every user document and JWT.
type Role string

const (
	RoleUncategorized Role = "uncategorized"
	RoleEmploy        Role = "employ"
	RoleSeniorEmploy  Role = "seniorEmploy"
	RoleOwner         Role = "owner"
)

// ParseRole maps a wire value onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUncategorized, RoleEmploy, RoleSeniorEmploy, RoleOwner:
		return Role(s), true
	}
	return "", false
}

// DefaultProfileImage is assigned at registration; it is never deleted
// from image storage.
const DefaultProfileImage = "https://res.cloudinary.com/bms-assets/image/upload/v1/default-profile.jpg"
