package handlers

import (
	applog "satyaphoto/internal/log"
	"satyaphoto/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	Inquiries *services.InquiryService
}

// POST /contact
// Accepts the contact form (JSON or form-encoded) and returns 201 with the
// generated submission id, 400 with field errors, or 500.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var form services.InquiryForm
	if err := c.BodyParser(&form); err != nil {
		applog.Security(c, "contact.badbody", map[string]any{"err": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Could not read the form",
		})
	}

	rec, fieldErrs, err := h.Inquiries.Submit(form)
	if err != nil {
		applog.Error(c, "contact.submit.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error. Please try again later.",
		})
	}
	if len(fieldErrs) > 0 {
		applog.Info(c, "contact.validation.fail", map[string]any{"fields": fieldErrs})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation error",
			"errors":  fieldErrs,
		})
	}

	applog.Audit(c, "contact.submit", map[string]any{"submission_id": rec.ID, "event_type": rec.EventType})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"message":       "Contact form submitted successfully",
		"submission_id": rec.ID,
	})
}

// GET /contact/submissions (owner only)
func (h *ContactHandler) List(c *fiber.Ctx) error {
	subs, err := h.Inquiries.List()
	if err != nil {
		applog.Error(c, "contact.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"success": true, "submissions": subs})
}
