package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lcvaldiviag/STREAMIX-sub000/cart"
	"github.com/lcvaldiviag/STREAMIX-sub000/catalog"
	"github.com/lcvaldiviag/STREAMIX-sub000/config"
	aiControllers "github.com/lcvaldiviag/STREAMIX-sub000/controllers/ai"
	"github.com/lcvaldiviag/STREAMIX-sub000/gemini"
	"github.com/lcvaldiviag/STREAMIX-sub000/middleware"
	"github.com/lcvaldiviag/STREAMIX-sub000/routes"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	log.Println("✅ Starting STREAMIX API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Catalog store (embedded seed data, or postgres when configured)
	store, err := initCatalog(cfg, log)
	if err != nil {
		log.Fatalf("❌ Failed to init catalog: %v", err)
	}

	// In-memory session carts
	carts := cart.NewStore()

	// Upstream AI capability; without a key the gateway rejects every call
	var assistant aiControllers.Assistant
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("❌ Failed to init Gemini client: %v", err)
		}
		assistant = client
		log.Println("✅ Gemini client ready")
	} else {
		log.Warn("⚠️ GEMINI_API_KEY not set; AI gateway will report the service as unavailable")
	}

	// Gin setup
	r := routes.NewEngine()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-ID", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		Catalog:        store,
		Carts:          carts,
		Assistant:      assistant,
		AdminAPIKey:    cfg.AdminAPIKey,
		WhatsAppNumber: cfg.WhatsAppNumber,
		Log:            log,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initCatalog picks the catalog backend from the configuration.
func initCatalog(cfg *config.Config, log *logrus.Logger) (catalog.Store, error) {
	if cfg.DatabaseConfigured() {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		log.Println("✅ Catalog backed by postgres")
		return catalog.NewGormStore(db)
	}
	log.Println("✅ Catalog backed by embedded seed data")
	return catalog.NewMemoryStore()
}
