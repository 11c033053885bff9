package handlers

import (
	"satyaphoto/internal/domain"
	applog "satyaphoto/internal/log"
	"satyaphoto/internal/services"
	"satyaphoto/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler is the owner panel: upload and organize media, review
// inquiries. Every route here sits behind RequireOwner.
type AdminHandler struct {
	Catalog   *services.CatalogService
	Inquiries *services.InquiryService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	counts, err := h.Catalog.Counts()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the dashboard"})
	}
	recent, err := h.Catalog.GetAllMedia()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the dashboard"})
	}
	if len(recent) > 8 {
		recent = recent[:8]
	}
	inqs, err := h.Inquiries.List()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the dashboard"})
	}
	return render(c, "admin_dashboard", fiber.Map{
		"Counts":       counts,
		"Recent":       recent,
		"InquiryCount": len(inqs),
		"Categories":   domain.ServiceCategories,
	})
}

// GET /admin/media
func (h *AdminHandler) MediaPage(c *fiber.Ctx) error {
	items, err := h.Catalog.GetAllMedia()
	if err != nil {
		applog.Error(c, "admin.media.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load media"})
	}
	return render(c, "admin_media", fiber.Map{
		"Items":      items,
		"Categories": domain.ServiceCategories,
	})
}

// POST /admin/media
// Multipart upload: file (required), title (optional, defaults to the file
// name), type (photo|video), service_category.
func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).SendString("a file must be selected")
	}
	mediaType, ok := validate.MediaType(c.FormValue("type"))
	if !ok {
		return c.Status(400).SendString("invalid media type")
	}
	category, ok := validate.Category(c.FormValue("service_category"))
	if !ok {
		return c.Status(400).SendString("invalid service category")
	}
	title, ok := validate.Title(c.FormValue("title"))
	if !ok {
		return c.Status(400).SendString("title too long")
	}

	src, err := fh.Open()
	if err != nil {
		applog.Error(c, "admin.media.upload.fail", err, map[string]any{"file": fh.Filename})
		return c.Status(400).SendString("could not read the uploaded file")
	}
	defer func() { _ = src.Close() }()

	uploader := "owner"
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		uploader = u.ID
	}

	item, err := h.Catalog.Upload(c.Context(), src, fh.Filename, title, mediaType, category, uploader)
	if err != nil {
		applog.Error(c, "admin.media.upload.fail", err, map[string]any{"file": fh.Filename})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Upload failed. Please try again."})
	}

	applog.Audit(c, "admin.media.upload", map[string]any{
		"media_id": item.ID, "category": item.Category, "type": item.Type,
	})
	return c.Redirect("/admin/media")
}

// POST /admin/media/:id/delete
func (h *AdminHandler) DeleteMedia(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Catalog.DeleteMedia(c.Context(), id); err != nil {
		applog.Error(c, "admin.media.delete.fail", err, map[string]any{"media_id": id})
		return c.Status(400).SendString("could not delete media")
	}
	applog.Audit(c, "admin.media.delete", map[string]any{"media_id": id})
	return c.Redirect("/admin/media")
}

// GET /admin/inquiries
func (h *AdminHandler) InquiriesPage(c *fiber.Ctx) error {
	inqs, err := h.Inquiries.List()
	if err != nil {
		applog.Error(c, "admin.inquiries.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inquiries"})
	}
	return render(c, "admin_inquiries", fiber.Map{"Inquiries": inqs})
}
