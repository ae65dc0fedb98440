package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lcvaldiviag/STREAMIX-sub000/cart"
	"github.com/lcvaldiviag/STREAMIX-sub000/catalog"
	aiControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/ai"
)

// Deps bundles everything the route handlers close over.
type Deps struct {
	Catalog        catalog.Store
	Carts          *cart.Store
	Assistant      aiControllers.Assistant
	AdminAPIKey    string
	WhatsAppNumber string
	Log            *logrus.Logger
}

// NewEngine builds a bare engine with the JSON method-not-allowed handler the
// API contract requires.
func NewEngine() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	return r
}

// SetupRoutes is the single entry-point that wires up the storefront, the AI
// gateway, and the admin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// Public storefront routes (catalog, cart, checkout)
	SetupStoreRoutes(r, deps)

	// AI gateway route
	SetupGatewayRoutes(r, deps)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, deps)
}
