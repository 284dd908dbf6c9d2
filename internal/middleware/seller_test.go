package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Monte une route vendeur factice et trace si le handler a été atteint :
// un rejet du garde ne doit produire aucun effet.
func sellerTestRouter(handlerCalled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:id/status", SellerRequired(), func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestSellerRequiredRejectsMissingCredentials(t *testing.T) {
	var called bool
	r := sellerTestRouter(&called)

	req := httptest.NewRequest(http.MethodPut, "/orders/abc/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestSellerRequiredAcceptsBasicAuth(t *testing.T) {
	var called bool
	r := sellerTestRouter(&called)

	req := httptest.NewRequest(http.MethodPut, "/orders/abc/status", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("FTH:FTH12345")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestSellerRequiredAcceptsCustomHeaders(t *testing.T) {
	var called bool
	r := sellerTestRouter(&called)

	req := httptest.NewRequest(http.MethodPut, "/orders/abc/status", nil)
	req.Header.Set("X-Seller-Id", "FTH")
	req.Header.Set("X-Seller-Secret", "FTH12345")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestSellerRequiredRejectsWrongPair(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"mauvais secret en basic", func(req *http.Request) {
			req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("FTH:nope")))
		}},
		{"mauvais id en headers", func(req *http.Request) {
			req.Header.Set("X-Seller-Id", "autre")
			req.Header.Set("X-Seller-Secret", "FTH12345")
		}},
		{"basic illisible", func(req *http.Request) {
			req.Header.Set("Authorization", "Basic %%%pas-du-base64%%%")
		}},
		{"basic sans separateur", func(req *http.Request) {
			req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("FTHFTH12345")))
		}},
		{"header secret seul", func(req *http.Request) {
			req.Header.Set("X-Seller-Secret", "FTH12345")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			r := sellerTestRouter(&called)

			req := httptest.NewRequest(http.MethodPut, "/orders/abc/status", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, called)
		})
	}
}

// Un Bearer acheteur valide n'ouvre jamais la surface vendeur : les deux
// mécanismes sont indépendants.
func TestSellerRequiredIgnoresBearerTokens(t *testing.T) {
	var called bool
	r := sellerTestRouter(&called)

	req := httptest.NewRequest(http.MethodPut, "/orders/abc/status", nil)
	req.Header.Set("Authorization", "Bearer un.jwt.valide")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
