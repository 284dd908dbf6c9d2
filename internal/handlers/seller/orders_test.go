package seller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aucune base n'est connectée dans ces tests : si le handler atteignait la
// collection, le test paniquerait. Un refus propre prouve donc que le
// statut stocké n'a pas pu bouger.
func putStatus(t *testing.T, orderID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/api/orders/:id/status", UpdateOrderStatus)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatusUnknownOrderIsNotFound(t *testing.T) {
	w := putStatus(t, "pas-un-objectid", `{"status":"shipped"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Commande introuvable")
}

func TestUpdateOrderStatusRejectsUnknownLiteral(t *testing.T) {
	// id bien formé : le refus vient du littéral, avant toute lecture
	w := putStatus(t, primitive.NewObjectID().Hex(), `{"status":"bogus"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Statut invalide")
}

func TestUpdateOrderStatusRejectsMissingStatus(t *testing.T) {
	w := putStatus(t, primitive.NewObjectID().Hex(), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusRejectsMalformedBody(t *testing.T) {
	w := putStatus(t, primitive.NewObjectID().Hex(), `{"status": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
