package handlers

import (
	applog "satyaphoto/internal/log"
	"satyaphoto/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireOwner gates the admin panel behind the single owner account.
func RequireOwner(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "OWNER" {
			applog.Security(c, "access.denied.owner", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
