package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/collections"
)

// ListDestinations returns every destination represented in the published
// catalog, counted and slugged
func (h *Handler) ListDestinations(c *fiber.Ctx) error {
	packages, err := h.db.ListPublishedPackages(c.Context())
	if err != nil {
		h.log.WithError(err).Error("load packages for destinations")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	return Success(c, collections.ListDestinations(packages))
}

// GetDestinationAggregate returns the computed destination summary as JSON
func (h *Handler) GetDestinationAggregate(c *fiber.Ctx) error {
	packages, err := h.db.ListPublishedPackages(c.Context())
	if err != nil {
		h.log.WithError(err).Error("load packages for destination aggregate")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	agg, err := collections.BuildDestinationAggregate(packages, c.Params("slug"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			return Error(c, fiber.StatusNotFound, "destination not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to build destination aggregate")
	}

	return Success(c, agg)
}

// RenderDestinationPage serves the server-rendered destination landing page
func (h *Handler) RenderDestinationPage(c *fiber.Ctx) error {
	packages, err := h.db.ListPublishedPackages(c.Context())
	if err != nil {
		h.log.WithError(err).Error("load packages for destination page")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	agg, err := collections.BuildDestinationAggregate(packages, c.Params("slug"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			return Error(c, fiber.StatusNotFound, "destination not found")
		}
		return Error(c, fiber.StatusInternalServerError, "failed to build destination aggregate")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(collections.RenderDestinationPage(h.renderCfg, agg))
}
