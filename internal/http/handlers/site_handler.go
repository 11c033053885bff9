package handlers

import (
	"satyaphoto/internal/domain"
	applog "satyaphoto/internal/log"
	"satyaphoto/internal/repos"
	"satyaphoto/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SiteHandler serves the static-ish public pages: home, about, packages and
// the contact form page.
type SiteHandler struct {
	Catalog     *services.CatalogService
	PackageRepo *repos.PackageRepo
}

func (h *SiteHandler) Home(c *fiber.Ctx) error {
	items, err := h.Catalog.GetAllMedia()
	if err != nil {
		applog.Error(c, "home.load.fail", err, nil)
		items = nil
	}
	// Show the most recent work on the landing page.
	if len(items) > 6 {
		items = items[:6]
	}
	return render(c, "home", fiber.Map{
		"Featured":   items,
		"Categories": domain.ServiceCategories,
	})
}

func (h *SiteHandler) About(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{})
}

func (h *SiteHandler) Packages(c *fiber.Ctx) error {
	pkgs, err := h.PackageRepo.List()
	if err != nil {
		applog.Error(c, "packages.load.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load packages"})
	}
	return render(c, "packages", fiber.Map{"Packages": pkgs})
}

func (h *SiteHandler) ContactPage(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{"Categories": domain.ServiceCategories})
}
