package cache

import (
	"context"
	"encoding/json"
	"time"

	"farmtohome_back_end/internal/database"
	"farmtohome_back_end/internal/models"
)

const (
	ProductCacheKey = "products:all"
	ProductCacheTTL = 10 * time.Minute
)

// GetProducts retourne le catalogue depuis Redis, ou false si absent.
func GetProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, ProductCacheKey).Result()
	if err != nil || data == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProducts met le catalogue en cache pour ProductCacheTTL.
func SetProducts(ctx context.Context, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, ProductCacheKey, data, ProductCacheTTL)
}

// InvalidateProducts purge le cache après toute mutation du catalogue.
func InvalidateProducts(ctx context.Context) {
	database.Redis.Del(ctx, ProductCacheKey)
}
