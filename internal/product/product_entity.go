package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string               `bson:"name" json:"name"`
	Price     float64              `bson:"price" json:"price"`
	Purchases []primitive.ObjectID `bson:"purchases" json:"purchases"`
	CreatedBy primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	Company   primitive.ObjectID   `bson:"company" json:"company"`
	CreatedAt time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"-"`
}
