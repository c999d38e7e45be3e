package purchase

type CreatePurchaseRequest struct {
	TotalAmount   float64  `json:"totalAmount" binding:"required,gt=0"`
	Status        string   `json:"status"`
	PaymentMethod string   `json:"paymentMethod"`
	Date          string   `json:"date"`
	Products      []string `json:"products"`
}

type UpdatePurchaseRequest struct {
	TotalAmount   *float64 `json:"totalAmount"`
	Status        string   `json:"status"`
	PaymentMethod string   `json:"paymentMethod"`
	Date          string   `json:"date"`
}
