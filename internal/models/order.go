package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuts de commande, dans l'ordre du cycle de vie.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusAccepted  = "accepted"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderItem fige le prix catalogue au moment de la commande : une
// modification ultérieure du produit ne change jamais une commande passée.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Qty       int                `bson:"qty" json:"qty"`
	Price     float64            `bson:"price" json:"price"`

	// Enrichis à la lecture depuis le catalogue, jamais persistés
	Name  string `bson:"-" json:"name,omitempty"`
	Image string `bson:"-" json:"image,omitempty"`
}

// OrderAddress est une copie dénormalisée de l'adresse choisie : éditer ses
// adresses enregistrées ne modifie pas les commandes déjà passées.
type OrderAddress struct {
	Label   string `bson:"label" json:"label"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
	Phone   string `bson:"phone" json:"phone"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Address   *OrderAddress      `bson:"address,omitempty" json:"address,omitempty"`
	Total     float64            `bson:"total" json:"total"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
