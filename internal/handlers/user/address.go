package user

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Les adresses sont embarquées dans le document utilisateur et référencées
// par index. Invariant maintenu ici : au plus une adresse isDefault.

func saveAddresses(ctx context.Context, user *models.User) error {
	_, err := database.Users().UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"addresses": user.Addresses}})
	return err
}

func clearDefaults(addresses []models.Address) {
	for i := range addresses {
		addresses[i].IsDefault = false
	}
}

// POST /api/auth/addresses
func AddAddress(c *gin.Context) {
	var input models.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	if input.IsDefault {
		clearDefaults(user.Addresses)
	}
	user.Addresses = append(user.Addresses, input)

	if err := saveAddresses(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement adresse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse ajoutée", "addresses": user.Addresses})
}

// PUT /api/auth/addresses/:idx
func UpdateAddress(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adresse introuvable"})
		return
	}

	// champs optionnels : seul ce qui est fourni change
	var input struct {
		Label     *string `json:"label"`
		Address   *string `json:"address"`
		City      *string `json:"city"`
		State     *string `json:"state"`
		Pincode   *string `json:"pincode"`
		Phone     *string `json:"phone"`
		IsDefault *bool   `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	if idx < 0 || idx >= len(user.Addresses) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adresse introuvable"})
		return
	}

	if input.IsDefault != nil && *input.IsDefault {
		clearDefaults(user.Addresses)
	}

	addr := &user.Addresses[idx]
	if input.Label != nil {
		addr.Label = *input.Label
	}
	if input.Address != nil {
		addr.Address = *input.Address
	}
	if input.City != nil {
		addr.City = *input.City
	}
	if input.State != nil {
		addr.State = *input.State
	}
	if input.Pincode != nil {
		addr.Pincode = *input.Pincode
	}
	if input.Phone != nil {
		addr.Phone = *input.Phone
	}
	if input.IsDefault != nil {
		addr.IsDefault = *input.IsDefault
	}

	if err := saveAddresses(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour adresse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse mise à jour", "addresses": user.Addresses})
}

// DELETE /api/auth/addresses/:idx
func DeleteAddress(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adresse introuvable"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, ok := currentUser(ctx, c)
	if !ok {
		return
	}
	if idx < 0 || idx >= len(user.Addresses) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adresse introuvable"})
		return
	}

	user.Addresses = append(user.Addresses[:idx], user.Addresses[idx+1:]...)

	if err := saveAddresses(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression adresse"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adresse supprimée", "addresses": user.Addresses})
}
