package routes

import (
	"github.com/gin-gonic/gin"

	aiControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/ai"
)

// SetupGatewayRoutes registers the single AI endpoint. POST only; other verbs
// hit the engine's no-method handler.
func SetupGatewayRoutes(r *gin.Engine, deps *Deps) {
	r.POST("/api/ai", aiControllers.HandleAction(deps.Assistant, deps.Log)) // POST /api/ai
}
