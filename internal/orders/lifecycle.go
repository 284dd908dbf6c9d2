package orders

import (
	"context"
	"errors"

	"farmtohome_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProductNotFound = errors.New("produit introuvable")

// Catalog est la seule vue dont la résolution de prix a besoin : lecture
// seule, par identifiant.
type Catalog interface {
	FindProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

// Resolve repasse chaque ligne du panier par le catalogue et fige le prix
// courant dans la ligne de commande. Le prix éventuellement fourni par le
// client n'est jamais lu.
//
// Un produit disparu entre l'ajout au panier et la commande est ignoré
// silencieusement : la ligne ne compte ni dans les items ni dans le total.
// C'est un choix assumé (voir DESIGN.md), pas un oubli.
func Resolve(ctx context.Context, catalog Catalog, items []models.CartItem) ([]models.OrderItem, float64, error) {
	resolved := []models.OrderItem{}
	total := 0.0

	for _, it := range items {
		id, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			// identifiant malformé : même traitement qu'un produit disparu
			continue
		}

		p, err := catalog.FindProduct(ctx, id)
		if errors.Is(err, ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}

		resolved = append(resolved, models.OrderItem{
			ProductID: p.ID,
			Qty:       qty,
			Price:     p.Price,
		})
		total += p.Price * float64(qty)
	}

	return resolved, total, nil
}
