package accountant

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Accountant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	AFM       string             `bson:"afm" json:"afm"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Company   primitive.ObjectID `bson:"company" json:"company"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"-"`
}
