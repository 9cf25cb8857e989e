package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/database"
	"github.com/farehaven/travelfront/internal/models"
)

// CreateEnquiry accepts a customer enquiry submission
func (h *Handler) CreateEnquiry(c *fiber.Ctx) error {
	var req models.CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return Error(c, fiber.StatusBadRequest, "name, email and message are required")
	}
	if !strings.Contains(req.Email, "@") {
		return Error(c, fiber.StatusBadRequest, "invalid email address")
	}

	enquiry, err := h.db.CreateEnquiry(c.Context(), &req)
	if err != nil {
		h.log.WithError(err).Error("create enquiry")
		return Error(c, fiber.StatusInternalServerError, "failed to submit enquiry")
	}

	h.log.WithField("reference", enquiry.Reference).Info("enquiry received")

	return c.Status(fiber.StatusCreated).JSON(APIResponse{
		Success: true,
		Data:    fiber.Map{"reference": enquiry.Reference},
	})
}

// ListEnquiries returns a paginated enquiry list (admin only)
func (h *Handler) ListEnquiries(c *fiber.Ctx) error {
	params := &models.EnquiryListParams{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
		Status: c.Query("status"),
	}

	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	enquiries, total, err := h.db.ListEnquiries(c.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("list enquiries")
		return Error(c, fiber.StatusInternalServerError, "failed to list enquiries")
	}

	return SuccessWithMeta(c, enquiries, total, params.Limit, params.Offset)
}

// UpdateEnquiryStatus transitions an enquiry between statuses (admin only)
func (h *Handler) UpdateEnquiryStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid enquiry id")
	}

	var req struct {
		Status models.EnquiryStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	switch req.Status {
	case models.EnquiryStatusNew, models.EnquiryStatusContacted, models.EnquiryStatusClosed:
	default:
		return Error(c, fiber.StatusBadRequest, "invalid status")
	}

	enquiry, err := h.db.UpdateEnquiryStatus(c.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, database.ErrEnquiryNotFound) {
			return Error(c, fiber.StatusNotFound, "enquiry not found")
		}
		h.log.WithError(err).Error("update enquiry status")
		return Error(c, fiber.StatusInternalServerError, "failed to update enquiry")
	}

	return Success(c, enquiry)
}
