package company

type CreateCompanyRequest struct {
	Name      string   `json:"name" form:"name" binding:"required"`
	Address   string   `json:"address" form:"address"`
	AFM       string   `json:"afm" form:"afm" binding:"required"`
	Phone     string   `json:"phone" form:"phone"`
	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`

	PostmanRequest bool `json:"postmanRequest" form:"postmanRequest"`
}

type UpdateCompanyRequest struct {
	Name      string   `json:"name" form:"name"`
	Address   string   `json:"address" form:"address"`
	AFM       string   `json:"afm" form:"afm"`
	Phone     string   `json:"phone" form:"phone"`
	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
}
