package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/models"
	"github.com/farehaven/travelfront/internal/services"
)

// ExportPackages streams the package catalog as an XLSX workbook (admin only)
func (h *Handler) ExportPackages(c *fiber.Ctx) error {
	params := &models.PackageListParams{Limit: 10000, Offset: 0}
	packages, _, err := h.db.ListPackages(c.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("load packages for export")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	buf, err := h.exporter.ExportPackages(packages)
	if err != nil {
		h.log.WithError(err).Error("export packages")
		return Error(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="packages.xlsx"`)
	return c.Send(buf.Bytes())
}

// ExportEnquiries streams the enquiry list as an XLSX workbook (admin only)
func (h *Handler) ExportEnquiries(c *fiber.Ctx) error {
	params := &models.EnquiryListParams{Limit: 10000, Offset: 0, Status: c.Query("status")}
	enquiries, _, err := h.db.ListEnquiries(c.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("load enquiries for export")
		return Error(c, fiber.StatusInternalServerError, "failed to load enquiries")
	}

	buf, err := h.exporter.ExportEnquiries(enquiries)
	if err != nil {
		h.log.WithError(err).Error("export enquiries")
		return Error(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="enquiries.xlsx"`)
	return c.Send(buf.Bytes())
}

// ReloadCollections re-reads the collections file into the registry (admin only)
func (h *Handler) ReloadCollections(c *fiber.Ctx) error {
	if h.cfg.CollectionsFile == "" {
		return Error(c, fiber.StatusBadRequest, "no collections file configured")
	}

	if err := h.registry.LoadFile(h.cfg.CollectionsFile); err != nil {
		h.log.WithError(err).Error("reload collections")
		return Error(c, fiber.StatusInternalServerError, "failed to reload collections")
	}

	return Success(c, h.registry.All())
}

// Sitemap serves sitemap.xml synthesized from the current catalog
func (h *Handler) Sitemap(c *fiber.Ctx) error {
	packages, err := h.db.ListPublishedPackages(c.Context())
	if err != nil {
		h.log.WithError(err).Error("load packages for sitemap")
		return Error(c, fiber.StatusInternalServerError, "failed to load packages")
	}

	pages, err := h.db.ListPages(c.Context(), true)
	if err != nil {
		h.log.WithError(err).Error("load pages for sitemap")
		return Error(c, fiber.StatusInternalServerError, "failed to load pages")
	}

	xml := services.BuildSitemap(h.cfg.CanonicalHost, packages, h.registry.All(), pages)
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(xml)
}
