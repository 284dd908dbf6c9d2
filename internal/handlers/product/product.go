package product

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"farmtohome_back_end/internal/cache"
	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"
	"farmtohome_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GET /api/products — catalogue public, servi depuis le cache Redis quand
// il est chaud.
func GetAllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cached, ok := cache.GetProducts(ctx); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		log.Println("❌ Erreur MongoDB Find:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produits"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage produits"})
		return
	}

	cache.SetProducts(ctx, products)
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func GetProductByID(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// productInput lit les champs depuis du JSON ou du multipart/form-data,
// avec image uploadée vers MinIO dans le second cas.
type productInput struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
}

func bindProductInput(c *gin.Context) (productInput, bool) {
	var in productInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if v, ok := c.GetPostForm("name"); ok {
			in.Name = &v
		}
		if v, ok := c.GetPostForm("description"); ok {
			in.Description = &v
		}
		if v, ok := c.GetPostForm("price"); ok {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return in, false
			}
			in.Price = &price
		}
		if v, ok := c.GetPostForm("image"); ok {
			in.Image = &v
		}
		if file, err := c.FormFile("image"); err == nil {
			url, err := services.UploadProductImage(file)
			if err != nil {
				log.Println("⚠️ Upload image échoué :", err)
			} else {
				in.Image = &url
			}
		}
		return in, true
	}

	var body struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Image       *string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return in, false
	}
	in.Name = body.Name
	in.Description = body.Description
	in.Price = body.Price
	in.Image = body.Image
	return in, true
}

// POST /api/products — création (vendeur uniquement).
func CreateProduct(c *gin.Context) {
	in, ok := bindProductInput(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if in.Name == nil || *in.Name == "" || in.Price == nil || *in.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom ou prix manquant"})
		return
	}

	now := time.Now()
	p := models.Product{
		Name:      *in.Name,
		Price:     *in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Products().InsertOne(ctx, p)
	if err != nil {
		log.Println("❌ Erreur MongoDB Insert:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}

	// 🔄 Indexation Elasticsearch + invalidation du cache catalogue
	go services.IndexProduct(p)
	cache.InvalidateProducts(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit créé", "product": p})
}

// PUT /api/products/:id — mise à jour partielle (vendeur uniquement).
func UpdateProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	in, ok := bindProductInput(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != nil && *in.Image != p.Image {
		// nouvelle image : on supprime l'ancienne si elle était chez nous
		services.RemoveProductImage(p.Image)
		p.Image = *in.Image
	}
	p.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image":       p.Image,
		"updated_at":  p.UpdatedAt,
	}}
	if _, err := database.Products().UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		log.Println("❌ Erreur MongoDB Update:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	go services.IndexProduct(p)
	cache.InvalidateProducts(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour", "product": p})
}

// DELETE /api/products/:id — suppression (vendeur uniquement).
func DeleteProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	services.RemoveProductImage(p.Image)

	if _, err := database.Products().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		log.Println("❌ Erreur MongoDB Delete:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	go services.RemoveProductFromIndex(oid.Hex())
	cache.InvalidateProducts(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
