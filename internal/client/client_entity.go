package client

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	FirstName string               `bson:"firstName" json:"firstName"`
	LastName  string               `bson:"lastName" json:"lastName"`
	Email     string               `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string               `bson:"address,omitempty" json:"address,omitempty"`
	Purchases []primitive.ObjectID `bson:"purchases" json:"purchases"`
	CreatedBy primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	Company   primitive.ObjectID   `bson:"company" json:"company"`
	CreatedAt time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"-"`
}
