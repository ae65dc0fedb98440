package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/cart"
	catalogControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/catalog"
	checkoutControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/checkout"
	"github.com/lcvaldiviag/STREAMIX-sub000/middleware"
)

// SetupStoreRoutes registers all "/api/*" storefront endpoints.
func SetupStoreRoutes(r *gin.Engine, deps *Deps) {
	api := r.Group("/api")

	// ──────────────── Catalog ────────────────
	api.GET("/catalog", catalogControllers.GetCatalog(deps.Catalog))        // GET /api/catalog
	api.GET("/catalog/:id", catalogControllers.GetCatalogItem(deps.Catalog)) // GET /api/catalog/:id

	// ──────────────── Shopping Cart ────────────────
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.EnsureSession())
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))                       // GET /api/cart
		cartGroup.POST("/items", cartControllers.AddItem(deps.Catalog, deps.Carts)) // POST /api/cart/items
		cartGroup.PUT("/items/:id", cartControllers.UpdateQuantity(deps.Carts))     // PUT /api/cart/items/:id
		cartGroup.DELETE("/items/:id", cartControllers.RemoveItem(deps.Carts))      // DELETE /api/cart/items/:id
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))                 // DELETE /api/cart
	}

	// ──────────────── Checkout ────────────────
	api.POST("/checkout",
		middleware.EnsureSession(),
		checkoutControllers.ConfirmCheckout(deps.Carts, deps.WhatsAppNumber)) // POST /api/checkout
}
