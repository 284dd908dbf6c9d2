package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"farmtohome_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderConfirmation envoie le récapitulatif de commande. Best effort :
// appelé en goroutine après la persistance, un échec n'affecte jamais la
// commande elle-même.
func SendOrderConfirmation(order models.Order, to string) {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		return // SMTP non configuré
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@farmtohome.local"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		log.Println("⚠️ E-mail confirmation : expéditeur invalide :", err)
		return
	}
	if err := msg.To(to); err != nil {
		log.Println("⚠️ E-mail confirmation : destinataire invalide :", err)
		return
	}
	msg.Subject(fmt.Sprintf("Commande %s confirmée", order.ID.Hex()))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		log.Println("⚠️ E-mail confirmation : client SMTP :", err)
		return
	}

	log.Println("📤 Envoi de la confirmation de commande à", to)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("⚠️ E-mail confirmation : envoi échoué :", err)
	}
}

func orderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f₹</td>
				<td>%.2f₹</td>
			</tr>`, item.ProductID.Hex(), item.Qty, item.Price, item.Price*float64(item.Qty))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body>
	<h2>Merci pour votre commande !</h2>
	<p>Commande <strong>%s</strong> — statut : %s</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Produit</th><th>Qté</th><th>Prix</th><th>Sous-total</th></tr>
		%s
	</table>
	<p><strong>Total : %.2f₹</strong></p>
</body>
</html>`, order.ID.Hex(), order.Status, itemsHTML, order.Total)
}
