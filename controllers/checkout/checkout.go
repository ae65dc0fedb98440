package checkoutControllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lcvaldiviag/STREAMIX-sub000/cart"
	"github.com/lcvaldiviag/STREAMIX-sub000/models"
)

// POST /api/checkout
//
// Builds the WhatsApp hand-off for the session's cart and clears it. No order
// record is written; payment is verified manually on the other end.
func ConfirmCheckout(carts *cart.Store, whatsAppNumber string) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr := carts.Get(c.GetString("session_id"))
		view := mgr.View()
		if len(view.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		message := BuildOrderMessage(view)
		link := WhatsAppLink(whatsAppNumber, message)
		mgr.Clear()

		c.JSON(http.StatusOK, gin.H{
			"message":     message,
			"whatsappUrl": link,
			"totalUSD":    view.Subtotal,
		})
	}
}

// BuildOrderMessage renders the pre-filled order message: one line per cart
// line plus the total in USD.
func BuildOrderMessage(view models.CartView) string {
	var b strings.Builder
	b.WriteString("¡Hola! 👋 Quiero confirmar mi pedido:\n\n")
	for _, line := range view.Items {
		fmt.Fprintf(&b, "• %s x%d - $%.2f\n",
			line.Item.Name, line.Quantity, line.Item.PriceUSD*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\n*Total: $%.2f*\n\nAdjunto mi comprobante de pago.", view.Subtotal)
	return b.String()
}

// WhatsAppLink builds the wa.me deep link with the message pre-filled.
func WhatsAppLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
