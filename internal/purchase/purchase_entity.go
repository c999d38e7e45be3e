package purchase

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusPaid:
		return Status(s), true
	}
	return "", false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
)

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCredit, PaymentDebit:
		return PaymentMethod(s), true
	}
	return "", false
}

type Purchase struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	TotalAmount   float64              `bson:"totalAmount" json:"totalAmount"`
	Status        Status               `bson:"status" json:"status"`
	PaymentMethod PaymentMethod        `bson:"paymentMethod" json:"paymentMethod"`
	Date          *time.Time           `bson:"date,omitempty" json:"date,omitempty"`
	Client        primitive.ObjectID   `bson:"client" json:"client"`
	Products      []primitive.ObjectID `bson:"products" json:"products"`
	CreatedBy     primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	Company       primitive.ObjectID   `bson:"company" json:"company"`
	CreatedAt     time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"-"`
}
