package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identifiants vendeur : paire fixe partagée, mono-vendeur. Le couple est
// surchargé par SELLER_ID / SELLER_SECRET, sinon valeurs historiques.
func sellerCredentials() (string, string) {
	id := os.Getenv("SELLER_ID")
	secret := os.Getenv("SELLER_SECRET")
	if id == "" || secret == "" {
		return "FTH", "FTH12345"
	}
	return id, secret
}

// SellerRequired accepte deux formes équivalentes :
//   - Authorization: Basic base64(id:secret)
//   - X-Seller-Id + X-Seller-Secret
//
// Comparaison en temps constant. Échec = 401, avant toute mutation.
func SellerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, secret := sellerCredentials()

		if checkBasicAuth(c, id, secret) || checkSellerHeaders(c, id, secret) {
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants vendeur requis"})
		c.Abort()
	}
}

func checkBasicAuth(c *gin.Context, id, secret string) bool {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Basic ") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
	if err != nil {
		return false
	}

	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return false
	}
	return constantTimeEquals(user, id) && constantTimeEquals(pass, secret)
}

func checkSellerHeaders(c *gin.Context, id, secret string) bool {
	sid := c.GetHeader("X-Seller-Id")
	ssecret := c.GetHeader("X-Seller-Secret")
	if sid == "" || ssecret == "" {
		return false
	}
	return constantTimeEquals(sid, id) && constantTimeEquals(ssecret, secret)
}

func constantTimeEquals(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
