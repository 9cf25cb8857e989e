package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/farehaven/travelfront/internal/collections"
	"github.com/farehaven/travelfront/internal/config"
	"github.com/farehaven/travelfront/internal/database"
	"github.com/farehaven/travelfront/internal/handlers"
	"github.com/farehaven/travelfront/internal/logger"
	"github.com/farehaven/travelfront/internal/middleware"
)

func main() {
	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Environment)

	// Connect to database
	db, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()
	log.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(context.Background()); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// Build the collection registry: built-ins, optionally overridden by a
	// YAML file and hot-reloaded on change
	registry := collections.DefaultRegistry()
	if cfg.CollectionsFile != "" {
		if err := registry.LoadFile(cfg.CollectionsFile); err != nil {
			log.WithError(err).Fatal("failed to load collections file")
		}
		log.WithField("file", cfg.CollectionsFile).Info("collections loaded")

		if cfg.WatchCollections {
			go func() {
				err := registry.Watch(cfg.CollectionsFile, nil, func(err error) {
					log.WithError(err).Warn("collections reload failed")
				})
				if err != nil {
					log.WithError(err).Warn("collections watcher stopped")
				}
			}()
		}
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Key",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Create handler with dependencies
	h := handlers.New(db, cfg, log, registry)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API routes
	api := app.Group("/api")

	// Package routes (public read)
	packages := api.Group("/packages")
	packages.Get("/", h.ListPackages)
	packages.Get("/stats", h.GetPackageStats)
	packages.Get("/search", h.SearchPackages)
	packages.Get("/:slug", h.GetPackage)

	// Collection routes (public read)
	collectionsAPI := api.Group("/collections")
	collectionsAPI.Get("/", h.ListCollections)
	collectionsAPI.Get("/:slug", h.GetCollectionAggregate)

	// Destination routes (public read)
	destinations := api.Group("/destinations")
	destinations.Get("/", h.ListDestinations)
	destinations.Get("/:slug", h.GetDestinationAggregate)

	// Content page routes (public read)
	api.Get("/pages/:slug", h.GetPage)

	// Enquiry capture (public write)
	api.Post("/enquiries", h.CreateEnquiry)

	// Admin routes (static key)
	admin := api.Group("/admin", middleware.AdminKeyRequired(cfg))
	admin.Get("/packages", h.AdminListPackages)
	admin.Post("/packages", h.CreatePackage)
	admin.Put("/packages/:id", h.UpdatePackage)
	admin.Delete("/packages/:id", h.DeletePackage)
	admin.Get("/enquiries", h.ListEnquiries)
	admin.Put("/enquiries/:id/status", h.UpdateEnquiryStatus)
	admin.Get("/pages", h.AdminListPages)
	admin.Post("/pages", h.CreatePage)
	admin.Put("/pages/:id", h.UpdatePage)
	admin.Delete("/pages/:id", h.DeletePage)
	admin.Get("/export/packages", h.ExportPackages)
	admin.Get("/export/enquiries", h.ExportEnquiries)
	admin.Post("/collections/reload", h.ReloadCollections)

	// Server-rendered SEO surfaces
	app.Get("/collections/:slug", h.RenderCollectionPage)
	app.Get("/destinations/:slug", h.RenderDestinationPage)
	app.Get("/pages/:slug", h.RenderContentPage)
	app.Get("/sitemap.xml", h.Sitemap)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
