package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"
	"farmtohome_back_end/internal/orders"
	"farmtohome_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ✅ POST /api/orders — transforme un instantané de panier en commande.
// Les prix sont re-résolus depuis le catalogue au moment de l'appel : un
// prix envoyé par le client n'est jamais lu.
func CreateOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Items []struct {
			Product string `json:"product"`
			Qty     int    `json:"qty"`
		} `json:"items"`
		Address *models.OrderAddress `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	snapshot := make([]models.CartItem, 0, len(input.Items))
	for _, it := range input.Items {
		snapshot = append(snapshot, models.CartItem{ProductID: it.Product, Qty: it.Qty})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	catalog := orders.MongoCatalog{Products: database.Products()}
	items, total, err := orders.Resolve(ctx, catalog, snapshot)
	if err != nil {
		log.Println("❌ Erreur résolution des prix:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	// La création passe directement à "paid" : aucun chemin public ne
	// produit "pending" (comportement historique, voir DESIGN.md).
	order := models.Order{
		UserID:    userID,
		Items:     items,
		Address:   input.Address,
		Total:     total,
		Status:    models.StatusPaid,
		CreatedAt: time.Now(),
	}

	result, err := database.Orders().InsertOne(ctx, order)
	if err != nil {
		log.Println("❌ Erreur MongoDB Insert:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	// Le panier Redis est consommé par la commande
	database.Redis.Del(ctx, cartKey(userID))

	// Confirmation par e-mail, sans bloquer la réponse
	go utils.SendOrderConfirmation(order, c.GetString("email"))

	c.JSON(http.StatusOK, gin.H{"message": "Commande créée", "order": order})
}

// ✅ GET /api/orders/my — commandes de l'acheteur connecté, plus récentes
// d'abord, lignes enrichies avec le détail produit.
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.Orders().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Println("❌ Erreur MongoDB Find:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}
	defer cursor.Close(ctx)

	var myOrders []models.Order
	if err := cursor.All(ctx, &myOrders); err != nil {
		log.Println("❌ Erreur décodage commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage"})
		return
	}

	catalog := orders.MongoCatalog{Products: database.Products()}
	catalog.AttachProductDetails(ctx, myOrders)

	c.JSON(http.StatusOK, gin.H{"orders": myOrders})
}
