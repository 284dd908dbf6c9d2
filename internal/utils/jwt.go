package utils

import (
	"os"
	"time"

	"farmtohome_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret lit le secret à chaque appel (et non à l'init du package) pour
// que godotenv ait eu le temps de charger le .env.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev_secret_please_change"
	}
	return []byte(secret)
}

// GenerateJWT émet un token de 7 jours portant l'identité de l'acheteur.
func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}
