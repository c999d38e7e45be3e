package auth

type RegisterRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required"`
	LastName  string `json:"lastName" form:"lastName" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	Phone     string `json:"phone" form:"phone"`
	// Automated clients (no cookie jar) get tokens echoed in headers.
	PostmanRequest bool `json:"postmanRequest" form:"postmanRequest"`
}

type LoginRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	PostmanRequest bool   `json:"postmanRequest"`
}
