package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/collections"
	"github.com/farehaven/travelfront/internal/config"
	"github.com/farehaven/travelfront/internal/database"
	"github.com/farehaven/travelfront/internal/logger"
	"github.com/farehaven/travelfront/internal/services"
)

// Handler holds all handler dependencies
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	log       *logger.Logger
	registry  *collections.Registry
	renderCfg collections.RenderConfig
	markdown  *services.MarkdownRenderer
	exporter  *services.Exporter
}

// New creates a new Handler instance
func New(db *database.DB, cfg *config.Config, log *logger.Logger, registry *collections.Registry) *Handler {
	return &Handler{
		db:       db,
		cfg:      cfg,
		log:      log,
		registry: registry,
		renderCfg: collections.RenderConfig{
			CanonicalHost: cfg.CanonicalHost,
			ContactEmail:  cfg.ContactEmail,
		},
		markdown: services.NewMarkdownRenderer(),
		exporter: services.NewExporter(),
	}
}

// ErrorHandler is a custom error handler for Fiber
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

// APIResponse is a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta contains pagination metadata
type Meta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Success returns a successful response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMeta returns a successful response with pagination
func SuccessWithMeta(c *fiber.Ctx, data interface{}, total, limit, offset int) error {
	return c.JSON(APIResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	})
}

// Error returns an error response
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success: false,
		Error:   message,
	})
}
