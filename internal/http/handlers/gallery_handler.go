package handlers

import (
	"satyaphoto/internal/domain"
	applog "satyaphoto/internal/log"
	"satyaphoto/internal/services"
	"satyaphoto/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// GalleryHandler renders the filterable gallery and serves the JSON feed the
// page polls to pick up fresh uploads without a reload.
type GalleryHandler struct {
	Catalog *services.CatalogService
}

// GET /gallery?category=wedding
func (h *GalleryHandler) Page(c *fiber.Ctx) error {
	category, ok := validate.GalleryFilter(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category", "value": c.Query("category")})
		category = "all"
	}

	items, err := h.Catalog.GetMediaFiltered(category)
	if err != nil {
		applog.Error(c, "gallery.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the gallery. Please retry."})
	}
	counts, err := h.Catalog.Counts()
	if err != nil {
		applog.Error(c, "gallery.counts.fail", err, nil)
		counts = map[string]int{}
	}

	return render(c, "gallery", fiber.Map{
		"Items":      items,
		"Selected":   category,
		"Counts":     counts,
		"Categories": domain.ServiceCategories,
	})
}

// GET /api/v1/media?category=all
// Polled by the gallery page every couple of seconds.
func (h *GalleryHandler) Feed(c *fiber.Ctx) error {
	category, ok := validate.GalleryFilter(c.Query("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	items, err := h.Catalog.GetMediaFiltered(category)
	if err != nil {
		applog.Error(c, "media.feed.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load media"})
	}
	counts, err := h.Catalog.Counts()
	if err != nil {
		applog.Error(c, "media.counts.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load media"})
	}
	return c.JSON(fiber.Map{"items": items, "counts": counts})
}
