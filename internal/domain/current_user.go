package domain

// CurrentUser is the identity the auth middleware attaches to every
// authenticated request before any service runs.
type CurrentUser struct {
	UserID    string `json:"userId"`
	Role      Role   `json:"role"`
	CompanyID string `json:"company,omitempty"`
	Email     string `json:"email"`
	Image     string `json:"image"`
}

// ContextKey is the gin context key the auth middleware stores the
// current user under.
const ContextKey = "current_user"
