package routes

import (
	"github.com/gin-gonic/gin"

	catalogControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/catalog"
	"github.com/lcvaldiviag/STREAMIX-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key
// middleware.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.AdminAPIKey))
	{
		adminGroup.GET("/catalog/export", catalogControllers.ExportCatalogToExcel(deps.Catalog)) // GET /admin/catalog/export
	}
}
