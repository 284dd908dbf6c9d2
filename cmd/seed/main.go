package main

import (
	"context"
	"log"
	"time"

	"farmtohome_back_end/internal/config"
	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Réinitialise le catalogue avec les produits de démonstration.
func main() {
	config.Load()
	database.ConnectDatabases()
	defer database.CloseDatabases()

	now := time.Now()
	products := []interface{}{
		models.Product{Name: "Organic Alphonso Mangoes", Price: 399, Image: "https://images.unsplash.com/photo-1553279768-865429fa0078?w=800&q=60", Description: "Premium Alphonso mangoes (6 pieces)", CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Fresh Coconuts", Price: 75, Image: "https://images.unsplash.com/photo-1581375321224-79da6fd32f6e?w=800&q=60", Description: "Tender coconuts for drinking (2 pieces)", CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Organic Basmati Rice", Price: 249, Image: "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=800&q=60", Description: "Premium aged basmati rice (1 kg)", CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Fresh Paneer", Price: 159, Image: "https://images.unsplash.com/photo-1631452180539-96aca7d48617?w=800&q=60", Description: "Fresh homemade paneer (500g)", CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Organic Turmeric Powder", Price: 89, Image: "https://images.unsplash.com/photo-1615485500704-8e990f9e6634?w=800&q=60", Description: "Pure organic turmeric powder (100g)", CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Fresh Curry Leaves", Price: 29, Image: "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=800&q=60", Description: "Fresh curry leaves bunch", CreatedAt: now, UpdatedAt: now},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := database.Products().DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal("❌ Erreur purge produits:", err)
	}
	if _, err := database.Products().InsertMany(ctx, products); err != nil {
		log.Fatal("❌ Erreur insertion produits:", err)
	}

	database.Redis.Del(ctx, "products:all")

	log.Println("✅ Catalogue réinitialisé :", len(products), "produits")
}
