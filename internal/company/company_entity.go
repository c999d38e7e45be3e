package company

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Company struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name       string               `bson:"name" json:"name"`
	Address    string               `bson:"address" json:"address"`
	AFM        string               `bson:"afm" json:"afm"`
	Phone      string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Logo       string               `bson:"logo,omitempty" json:"logo,omitempty"`
	Latitude   *float64             `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  *float64             `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Owner      primitive.ObjectID   `bson:"owner" json:"owner"`
	Employees  []primitive.ObjectID `bson:"employees" json:"employees"`
	Products   []primitive.ObjectID `bson:"products" json:"products"`
	Clients    []primitive.ObjectID `bson:"clients" json:"clients"`
	Purchases  []primitive.ObjectID `bson:"purchases" json:"purchases"`
	Accountant *primitive.ObjectID  `bson:"accountant,omitempty" json:"accountant,omitempty"`
	CreatedAt  time.Time            `bson:"createdAt" json:"-"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"-"`
}
