package checkoutControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcvaldiviag/STREAMIX-sub000/cart"
	checkoutControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/checkout"
	"github.com/lcvaldiviag/STREAMIX-sub000/middleware"
	"github.com/lcvaldiviag/STREAMIX-sub000/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testNumber = "584121234567"

func checkoutRouter(carts *cart.Store) http.Handler {
	r := gin.New()
	r.POST("/api/checkout",
		middleware.EnsureSession(),
		checkoutControllers.ConfirmCheckout(carts, testNumber))
	return r
}

func postCheckout(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	req.Header.Set("X-Session-ID", "test-session")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestBuildOrderMessage(t *testing.T) {
	view := models.CartView{
		Items: []models.CartLine{
			{Item: models.CatalogItem{Name: "Netflix Premium 4K", PriceUSD: 4.80}, Quantity: 2},
			{Item: models.CatalogItem{Name: "Combo Cine Total", PriceUSD: 8.10}, Quantity: 1},
		},
		Subtotal: 17.70,
	}

	msg := checkoutControllers.BuildOrderMessage(view)

	assert.Contains(t, msg, "Netflix Premium 4K x2 - $9.60")
	assert.Contains(t, msg, "Combo Cine Total x1 - $8.10")
	assert.Contains(t, msg, "*Total: $17.70*")
}

func TestWhatsAppLinkEscapesMessage(t *testing.T) {
	link := checkoutControllers.WhatsAppLink(testNumber, "hola mundo & más")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/"+testNumber+"?text="))
	assert.NotContains(t, link, " ")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hola mundo & más", u.Query().Get("text"))
}

func TestCheckoutEmptyCartReturns400(t *testing.T) {
	w := postCheckout(t, checkoutRouter(cart.NewStore()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutReturnsHandOffAndClearsCart(t *testing.T) {
	carts := cart.NewStore()
	mgr := carts.Get("test-session")
	mgr.AddItem(models.CatalogItem{ID: "netflix", Name: "Netflix Premium 4K", PriceUSD: 4.80})
	mgr.AddItem(models.CatalogItem{ID: "netflix", Name: "Netflix Premium 4K", PriceUSD: 4.80})
	mgr.AddItem(models.CatalogItem{ID: "combo-cine", Name: "Combo Cine Total", PriceUSD: 8.10})

	w := postCheckout(t, checkoutRouter(carts))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message     string  `json:"message"`
		WhatsAppURL string  `json:"whatsappUrl"`
		TotalUSD    float64 `json:"totalUSD"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Contains(t, body.Message, "Netflix Premium 4K x2")
	assert.Contains(t, body.WhatsAppURL, "https://wa.me/"+testNumber)
	assert.InDelta(t, 17.70, body.TotalUSD, 1e-9)

	assert.Zero(t, mgr.ItemCount())
}
