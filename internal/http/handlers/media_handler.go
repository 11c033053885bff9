package handlers

import (
	"io"
	"path/filepath"
	"strings"

	applog "satyaphoto/internal/log"
	"satyaphoto/internal/mediastore"

	"github.com/gofiber/fiber/v2"
)

// MediaHandler streams stored media bytes for /media/<key> URLs.
type MediaHandler struct {
	Blobs mediastore.Store
}

func (h *MediaHandler) Serve(c *fiber.Ctx) error {
	key := c.Params("*")
	rawLower := strings.ToLower(key)
	// Block encoded traversal attempts as well as raw .. or null bytes
	if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
		applog.Security(c, "media.traversal.block", map[string]any{"path": key})
		return c.SendStatus(fiber.StatusNotFound)
	}
	clean := filepath.Clean(key)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		applog.Security(c, "media.traversal.block", map[string]any{"path": key})
		return c.SendStatus(fiber.StatusNotFound)
	}

	rc, mimeType, err := h.Blobs.Get(c.Context(), clean)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	if err != nil {
		applog.Error(c, "media.read.fail", err, map[string]any{"key": clean})
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, mimeType)
	return c.Send(body)
}
