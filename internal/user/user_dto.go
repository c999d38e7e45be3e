package user

type UpdateUserRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" form:"phone"`
	// Automated clients (no cookie jar) get tokens echoed in headers.
	PostmanRequest bool `json:"postmanRequest" form:"postmanRequest"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ChangeRoleRequest struct {
	Role           string `json:"role"`
	PostmanRequest bool   `json:"postmanRequest"`
}

type AddToCompanyRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
	Role      string `json:"role"`
}

// UserResponse is a user document with credential and audit fields
// projected out.
type UserResponse struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Image     string `json:"image"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}
