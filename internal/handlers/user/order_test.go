package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Monte la route de création avec un garde factice qui pose le claim
// user_id, comme le ferait AuthRequired. Aucune base n'est connectée :
// atteindre le store ferait paniquer le test, un 400 prouve donc que le
// refus précède toute écriture.
func orderTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", func(c *gin.Context) {
		c.Set("user_id", primitive.NewObjectID().Hex())
	}, CreateOrder)
	return r
}

func postOrder(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	orderTestRouter().ServeHTTP(w, req)
	return w
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	w := postOrder(t, `{"items":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Panier vide")
}

func TestCreateOrderRejectsMissingItems(t *testing.T) {
	w := postOrder(t, `{"address":{"city":"Pune"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Panier vide")
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	w := postOrder(t, `{"items": pas-du-json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
