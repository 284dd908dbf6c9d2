package models

// CartItem : une intention d'achat (produit, quantité).
type CartItem struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// Cart conserve les lignes dans l'ordre d'insertion. L'état vit côté Redis
// sous la clé "cart:<userID>", ce type ne fait que porter la logique.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add incrémente la quantité du produit, en créant la ligne à 1 si absente.
func (c *Cart) Add(productID string, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Qty: qty})
}

// Remove décrémente la quantité ; la ligne disparaît quand elle atteint
// zéro. Produit absent : aucun effet.
func (c *Cart) Remove(productID string, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty -= qty
			if c.Items[i].Qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
}

// Snapshot retourne une copie des lignes, prête à être soumise en commande.
func (c *Cart) Snapshot() []CartItem {
	out := make([]CartItem, len(c.Items))
	copy(out, c.Items)
	return out
}

// Qty retourne la quantité courante d'un produit (0 si absent).
func (c *Cart) Qty(productID string) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Qty
		}
	}
	return 0
}
