package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/collections"
)

// ListCollections returns the collection registry in registration order
func (h *Handler) ListCollections(c *fiber.Ctx) error {
	return Success(c, h.registry.All())
}

// GetCollectionAggregate returns the computed aggregate for a collection
// as JSON, including its FAQ list
func (h *Handler) GetCollectionAggregate(c *fiber.Ctx) error {
	cfg, err := h.registry.Get(c.Params("slug"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			return Error(c, fiber.StatusNotFound, "collection not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to resolve collection")
	}

	packages, err := h.db.ListPublishedPackages(c.Context())
	if err != nil {
		h.log.WithError(err).Error("load packages for aggregation")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	agg := collections.BuildAggregate(packages, cfg)
	return Success(c, fiber.Map{
		"aggregate":        agg,
		"faqs":             collections.GenerateFAQs(h.renderCfg, agg),
		"meta_title":       collections.MetaTitle(cfg),
		"meta_description": collections.MetaDescription(agg),
	})
}

// RenderCollectionPage serves the server-rendered collection landing page
func (h *Handler) RenderCollectionPage(c *fiber.Ctx) error {
	cfg, err := h.registry.Get(c.Params("slug"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			return Error(c, fiber.StatusNotFound, "collection not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to resolve collection")
	}

	packages, err := h.db.ListPublishedPackages(c.Context())
	if err != nil {
		h.log.WithError(err).Error("load packages for collection page")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	agg := collections.BuildAggregate(packages, cfg)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(collections.RenderPage(h.renderCfg, agg))
}
