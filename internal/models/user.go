package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address est embarquée dans le document utilisateur : pas d'identifiant
// propre, on la référence par sa position dans la liste.
type Address struct {
	Label     string `bson:"label" json:"label"`
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Pincode   string `bson:"pincode" json:"pincode"`
	Phone     string `bson:"phone" json:"phone"`
	IsDefault bool   `bson:"isDefault" json:"isDefault"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"passwordHash" json:"-"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Addresses []Address          `bson:"addresses" json:"addresses"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
