package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"satyaphoto/internal/config"
	"satyaphoto/internal/http/handlers"
	applog "satyaphoto/internal/log"
	"satyaphoto/internal/mediastore"
	"satyaphoto/internal/mediastore/local"
	"satyaphoto/internal/mediastore/miniostore"
	"satyaphoto/internal/repos"
	"satyaphoto/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repos.SeedOwner(db, cfg.OwnerEmail, cfg.OwnerName, cfg.OwnerPassword); err != nil {
		log.Fatal(err)
	}

	blobs, err := newMediaStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Uploads carry full-resolution photos and short clips.
	app.Server().MaxRequestBodySize = 64 << 20 // 64 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			// The contact endpoint is a public JSON API consumed without a
			// rendered form; it is rate-limited instead.
			return c.Path() == "/contact" && c.Method() == fiber.MethodPost
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			formTok := c.FormValue("csrf")
			applog.Security(c, "csrf.fail", map[string]any{"form": formTok})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, blobs)

	// Static assets & stored media
	app.Static("/static", "./web/static")
	app.Get("/media/*", deps.MediaHandler.Serve)

	// Public pages
	app.Get("/", deps.SiteHandler.Home)
	app.Get("/gallery", deps.GalleryHandler.Page)
	app.Get("/about", deps.SiteHandler.About)
	app.Get("/packages", deps.SiteHandler.Packages)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.SearchHandler.Search)

	// Contact
	app.Get("/contact", deps.SiteHandler.ContactPage)
	app.Post("/contact", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"success": false, "message": "Too many submissions, retry soon"})
		},
	}), deps.ContactHandler.Submit)
	app.Get("/contact/submissions", handlers.RequireOwner(authSvc), deps.ContactHandler.List)

	// API
	api := app.Group("/api/v1")
	api.Get("/media", deps.GalleryHandler.Feed)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin (single owner)
	admin := app.Group("/admin", handlers.RequireOwner(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/media", deps.AdminHandler.MediaPage)
	admin.Post("/media", deps.AdminHandler.Upload)
	admin.Post("/media/:id/delete", deps.AdminHandler.DeleteMedia)
	admin.Get("/inquiries", deps.AdminHandler.InquiriesPage)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

func newMediaStore(cfg config.Config) (mediastore.Store, error) {
	switch cfg.MediaBackend {
	case "minio":
		return miniostore.New(cfg.MinioHost, cfg.MinioAccess, cfg.MinioSecret, cfg.MinioBucket, cfg.MinioSSL)
	default:
		return local.New(cfg.MediaDir)
	}
}
