package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/collections"
	"github.com/farehaven/travelfront/internal/database"
	"github.com/farehaven/travelfront/internal/models"
)

// ListPackages returns a paginated list of published packages
func (h *Handler) ListPackages(c *fiber.Ctx) error {
	params := &models.PackageListParams{
		Limit:         c.QueryInt("limit", 50),
		Offset:        c.QueryInt("offset", 0),
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		Tag:           c.Query("tag"),
		PublishedOnly: true,
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	packages, total, err := h.db.ListPackages(c.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("list packages")
		return Error(c, fiber.StatusInternalServerError, "failed to list packages")
	}

	return SuccessWithMeta(c, packages, total, params.Limit, params.Offset)
}

// GetPackage returns a single published package by slug
func (h *Handler) GetPackage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	pkg, err := h.db.GetPackageBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, database.ErrPackageNotFound) {
			return Error(c, fiber.StatusNotFound, "package not found")
		}
		h.log.WithError(err).Error("get package")
		return Error(c, fiber.StatusInternalServerError, "failed to get package")
	}

	if !pkg.IsPublished {
		return Error(c, fiber.StatusNotFound, "package not found")
	}

	return Success(c, pkg)
}

// SearchPackages performs a search on published packages
func (h *Handler) SearchPackages(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return Error(c, fiber.StatusBadRequest, "search query is required")
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	packages, err := h.db.SearchPackages(c.Context(), query, limit)
	if err != nil {
		h.log.WithError(err).Error("search packages")
		return Error(c, fiber.StatusInternalServerError, "failed to search packages")
	}

	return Success(c, packages)
}

// GetPackageStats returns aggregate catalog statistics
func (h *Handler) GetPackageStats(c *fiber.Ctx) error {
	stats, err := h.db.GetPackageStats(c.Context())
	if err != nil {
		h.log.WithError(err).Error("package stats")
		return Error(c, fiber.StatusInternalServerError, "failed to get package stats")
	}

	return Success(c, stats)
}

// CreatePackage creates a new package (admin only)
func (h *Handler) CreatePackage(c *fiber.Ctx) error {
	var req models.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Title == "" {
		return Error(c, fiber.StatusBadRequest, "title is required")
	}
	if req.Slug == "" {
		req.Slug = collections.Slugify(req.Title)
	}
	req.Tags = splitCommaTags(req.Tags)

	pkg, err := h.db.CreatePackage(c.Context(), &req)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateSlug) {
			return Error(c, fiber.StatusConflict, "slug already in use")
		}
		h.log.WithError(err).Error("create package")
		return Error(c, fiber.StatusInternalServerError, "failed to create package")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    pkg,
	})
}

// UpdatePackage updates an existing package (admin only)
func (h *Handler) UpdatePackage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid package id")
	}

	var req models.UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Tags = splitCommaTags(req.Tags)

	pkg, err := h.db.UpdatePackage(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, database.ErrPackageNotFound) {
			return Error(c, fiber.StatusNotFound, "package not found")
		}
		if errors.Is(err, database.ErrDuplicateSlug) {
			return Error(c, fiber.StatusConflict, "slug already in use")
		}
		h.log.WithError(err).Error("update package")
		return Error(c, fiber.StatusInternalServerError, "failed to update package")
	}

	return Success(c, pkg)
}

// DeletePackage deletes a package (admin only)
func (h *Handler) DeletePackage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid package id")
	}

	if err := h.db.DeletePackage(c.Context(), id); err != nil {
		if errors.Is(err, database.ErrPackageNotFound) {
			return Error(c, fiber.StatusNotFound, "package not found")
		}
		h.log.WithError(err).Error("delete package")
		return Error(c, fiber.StatusInternalServerError, "failed to delete package")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "package deleted successfully",
	})
}

// AdminListPackages returns all packages including unpublished ones
func (h *Handler) AdminListPackages(c *fiber.Ctx) error {
	params := &models.PackageListParams{
		Limit:    c.QueryInt("limit", 50),
		Offset:   c.QueryInt("offset", 0),
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	packages, total, err := h.db.ListPackages(c.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("admin list packages")
		return Error(c, fiber.StatusInternalServerError, "failed to list packages")
	}

	return SuccessWithMeta(c, packages, total, params.Limit, params.Offset)
}

// splitCommaTags expands a single "a, b, c" entry into separate tags,
// matching how the admin UI submits them.
func splitCommaTags(tags []string) []string {
	if len(tags) != 1 || !strings.Contains(tags[0], ",") {
		return tags
	}
	parts := strings.Split(tags[0], ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
