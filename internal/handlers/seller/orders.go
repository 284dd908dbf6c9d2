package seller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"
	"farmtohome_back_end/internal/orders"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Surface vendeur du cycle de vie des commandes. Les routes passent par
// middleware.SellerRequired : ici on ne revérifie rien.

// ✅ GET /api/orders — toutes les commandes, plus récentes d'abord.
// Pas de pagination : volumétrie mono-vendeur assumée.
func GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.Orders().Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("❌ Erreur MongoDB Find:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}
	defer cursor.Close(ctx)

	var allOrders []models.Order
	if err := cursor.All(ctx, &allOrders); err != nil {
		log.Println("❌ Erreur décodage commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage"})
		return
	}

	catalog := orders.MongoCatalog{Products: database.Products()}
	catalog.AttachProductDetails(ctx, allOrders)

	c.JSON(http.StatusOK, gin.H{"orders": allOrders})
}

// ✅ PUT /api/orders/:id/status — fait avancer une commande dans son cycle
// de vie. Statut inconnu ou transition interdite : refus avant toute
// écriture, le statut stocké ne bouge pas.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if !orders.IsValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !orders.CanTransition(order.Status, input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Transition interdite : %s → %s", order.Status, input.Status),
		})
		return
	}

	update := bson.M{"$set": bson.M{"status": input.Status}}
	if _, err := database.Orders().UpdateOne(ctx, bson.M{"_id": orderID}, update); err != nil {
		log.Println("❌ Erreur MongoDB Update:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour commande"})
		return
	}

	order.Status = input.Status
	c.JSON(http.StatusOK, gin.H{"message": "Statut mis à jour", "order": order})
}
