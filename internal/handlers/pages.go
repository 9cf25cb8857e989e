package handlers

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/database"
	"github.com/farehaven/travelfront/internal/models"
)

// GetPage returns a published content page as JSON with its body rendered
// to HTML
func (h *Handler) GetPage(c *fiber.Ctx) error {
	page, err := h.db.GetPageBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, database.ErrPageNotFound) {
			return Error(c, fiber.StatusNotFound, "page not found")
		}
		h.log.WithError(err).Error("get page")
		return Error(c, fiber.StatusInternalServerError, "failed to get page")
	}

	if !page.IsPublished {
		return Error(c, fiber.StatusNotFound, "page not found")
	}

	body, err := h.markdown.Render(page.Body)
	if err != nil {
		h.log.WithError(err).Error("render page body")
		return Error(c, fiber.StatusInternalServerError, "failed to render page")
	}

	return Success(c, fiber.Map{
		"page": page,
		"html": body,
	})
}

// RenderContentPage serves a published content page as server-rendered HTML
func (h *Handler) RenderContentPage(c *fiber.Ctx) error {
	page, err := h.db.GetPageBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, database.ErrPageNotFound) {
			return Error(c, fiber.StatusNotFound, "page not found")
		}
		h.log.WithError(err).Error("get page")
		return Error(c, fiber.StatusInternalServerError, "failed to get page")
	}

	if !page.IsPublished {
		return Error(c, fiber.StatusNotFound, "page not found")
	}

	body, err := h.markdown.Render(page.Body)
	if err != nil {
		h.log.WithError(err).Error("render page body")
		return Error(c, fiber.StatusInternalServerError, "failed to render page")
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(page.Title))
	if page.MetaDescription != "" {
		fmt.Fprintf(&b, `<meta name="description" content="%s">`+"\n", html.EscapeString(page.MetaDescription))
	}
	fmt.Fprintf(&b, `<link rel="canonical" href="https://%s/pages/%s">`+"\n",
		html.EscapeString(h.cfg.CanonicalHost), html.EscapeString(page.Slug))
	b.WriteString("</head>\n<body>\n<article>\n")
	b.WriteString(body)
	b.WriteString("\n</article>\n</body>\n</html>\n")

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(b.String())
}

// AdminListPages returns all content pages including drafts (admin only)
func (h *Handler) AdminListPages(c *fiber.Ctx) error {
	pages, err := h.db.ListPages(c.Context(), false)
	if err != nil {
		h.log.WithError(err).Error("list pages")
		return Error(c, fiber.StatusInternalServerError, "failed to list pages")
	}

	return Success(c, pages)
}

// CreatePage creates a content page (admin only)
func (h *Handler) CreatePage(c *fiber.Ctx) error {
	var req models.CreatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Title == "" || req.Slug == "" {
		return Error(c, fiber.StatusBadRequest, "slug and title are required")
	}

	page, err := h.db.CreatePage(c.Context(), &req)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateSlug) {
			return Error(c, fiber.StatusConflict, "slug already in use")
		}
		h.log.WithError(err).Error("create page")
		return Error(c, fiber.StatusInternalServerError, "failed to create page")
	}

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    page,
	})
}

// UpdatePage updates a content page (admin only)
func (h *Handler) UpdatePage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid page id")
	}

	var req models.UpdatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	page, err := h.db.UpdatePage(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, database.ErrPageNotFound) {
			return Error(c, fiber.StatusNotFound, "page not found")
		}
		h.log.WithError(err).Error("update page")
		return Error(c, fiber.StatusInternalServerError, "failed to update page")
	}

	return Success(c, page)
}

// DeletePage deletes a content page (admin only)
func (h *Handler) DeletePage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid page id")
	}

	if err := h.db.DeletePage(c.Context(), id); err != nil {
		if errors.Is(err, database.ErrPageNotFound) {
			return Error(c, fiber.StatusNotFound, "page not found")
		}
		h.log.WithError(err).Error("delete page")
		return Error(c, fiber.StatusInternalServerError, "failed to delete page")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "page deleted successfully",
	})
}
