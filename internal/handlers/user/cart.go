package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Le panier vit dans Redis sous "cart:<userID>" : état transitoire, aucune
// persistance Mongo avant la soumission en commande.

const cartTTL = 30 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

func loadCart(ctx context.Context, userID string) models.Cart {
	var cart models.Cart
	data, err := database.Redis.Get(ctx, cartKey(userID)).Result()
	if err == nil && data != "" {
		_ = json.Unmarshal([]byte(data), &cart.Items)
	}
	return cart
}

func saveCart(ctx context.Context, userID string, cart models.Cart) {
	data, _ := json.Marshal(cart.Items)
	database.Redis.Set(ctx, cartKey(userID), data, cartTTL)
}

// GET /api/cart
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart := loadCart(ctx, userID)
	c.JSON(http.StatusOK, gin.H{"items": cart.Snapshot()})
}

// 🟢 POST /api/cart/add
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Le produit doit exister au moment de l'ajout. Le prix, lui, sera
	// re-résolu à la commande : on ne stocke que (produit, quantité).
	oid, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	cart := loadCart(ctx, userID)
	cart.Add(input.ProductID, input.Qty)
	saveCart(ctx, userID, cart)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   cart.Snapshot(),
	})
}

// 🔻 POST /api/cart/remove
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart := loadCart(ctx, userID)
	cart.Remove(input.ProductID, input.Qty)
	saveCart(ctx, userID, cart)

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier mis à jour",
		"items":   cart.Snapshot(),
	})
}

// 🧹 DELETE /api/cart/clear
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.Redis.Del(ctx, cartKey(userID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé"})
}
