package orders

import (
	"context"
	"errors"
	"fmt"

	"farmtohome_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalog adapte la collection products au contrat Catalog.
type MongoCatalog struct {
	Products *mongo.Collection
}

func (mc MongoCatalog) FindProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := mc.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lecture produit: %w", err)
	}
	return &p, nil
}

// AttachProductDetails complète les lignes de commande avec le nom et
// l'image actuels du produit, pour l'affichage. Le prix, lui, reste celui
// figé à la création. Produit disparu : la ligne reste telle quelle.
func (mc MongoCatalog) AttachProductDetails(ctx context.Context, orders []models.Order) {
	for i := range orders {
		for j := range orders[i].Items {
			p, err := mc.FindProduct(ctx, orders[i].Items[j].ProductID)
			if err != nil {
				continue
			}
			orders[i].Items[j].Name = p.Name
			orders[i].Items[j].Image = p.Image
		}
	}
}
