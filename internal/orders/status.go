package orders

import (
	"farmtohome_back_end/internal/models"
)

// Rang de chaque statut dans le cycle de vie. "cancelled" est hors rang :
// il est atteignable depuis n'importe quel état non terminal.
var statusRank = map[string]int{
	models.StatusPending:   0,
	models.StatusPaid:      1,
	models.StatusAccepted:  2,
	models.StatusShipped:   3,
	models.StatusDelivered: 4,
	models.StatusCancelled: 5,
}

// IsValidStatus vérifie que la valeur fait partie des six statuts reconnus.
func IsValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// IsTerminal : "delivered" et "cancelled" n'acceptent plus aucune transition.
func IsTerminal(s string) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// CanTransition applique la table de transitions :
//
//	pending → paid → accepted → shipped → delivered
//
// avec "cancelled" accessible depuis tout état non terminal. On autorise les
// sauts vers l'avant (paid → shipped) mais jamais les retours en arrière —
// l'ancien comportement acceptait n'importe quelle valeur, y compris
// delivered → pending, ce qui était un trou et non une politique.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if IsTerminal(from) {
		return false
	}
	if to == models.StatusCancelled {
		return true
	}
	return statusRank[to] > statusRank[from]
}
