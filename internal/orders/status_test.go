package orders

import (
	"testing"

	"farmtohome_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "accepted", "shipped", "delivered", "cancelled"} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("bogus"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Paid"))
}

func TestCanTransitionForward(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{models.StatusPending, models.StatusPaid, true},
		{models.StatusPaid, models.StatusAccepted, true},
		{models.StatusAccepted, models.StatusShipped, true},
		{models.StatusShipped, models.StatusDelivered, true},
		// les sauts vers l'avant restent permis
		{models.StatusPaid, models.StatusShipped, true},
		{models.StatusPending, models.StatusDelivered, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

// L'implémentation historique acceptait n'importe quelle valeur reconnue
// depuis n'importe quel état (delivered redevenait pending sans broncher).
// Ces retours en arrière sont maintenant refusés.
func TestCanTransitionRejectsBackwardMoves(t *testing.T) {
	tests := []struct{ from, to string }{
		{models.StatusPaid, models.StatusPending},
		{models.StatusShipped, models.StatusPaid},
		{models.StatusDelivered, models.StatusPending},
		{models.StatusDelivered, models.StatusShipped},
		{models.StatusPaid, models.StatusPaid},
	}
	for _, tt := range tests {
		assert.False(t, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionCancellation(t *testing.T) {
	// annulable depuis tout état non terminal
	for _, from := range []string{models.StatusPending, models.StatusPaid, models.StatusAccepted, models.StatusShipped} {
		assert.True(t, CanTransition(from, models.StatusCancelled), from)
	}

	// les états terminaux n'acceptent plus rien
	assert.False(t, CanTransition(models.StatusDelivered, models.StatusCancelled))
	assert.False(t, CanTransition(models.StatusCancelled, models.StatusPending))
	assert.False(t, CanTransition(models.StatusCancelled, models.StatusCancelled))
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(models.StatusPaid, "bogus"))
	assert.False(t, CanTransition("bogus", models.StatusPaid))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusShipped))
}
