package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-bms/internal/domain"
)

type User struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	FirstName string              `bson:"firstName" json:"firstName"`
	LastName  string              `bson:"lastName" json:"lastName"`
	Email     string              `bson:"email" json:"email"`
	Password  string              `bson:"password" json:"-"`
	Role      domain.Role         `bson:"role" json:"role"`
	Image     string              `bson:"image" json:"image"`
	Phone     string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   *primitive.ObjectID `bson:"company,omitempty" json:"company,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"-"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"-"`
}
