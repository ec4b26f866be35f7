package reload

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// VersionSource reports the current reload version.
type VersionSource interface {
	Version() uint16
}

// Handler handles HTTP requests for the reload version.
type Handler struct {
	source VersionSource
}

// NewHandler creates a new HTTP handler.
func NewHandler(source VersionSource) *Handler {
	return &Handler{source: source}
}

// RegisterRoutes registers the reload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/hot", h.HandleVersion)
}

// HandleVersion writes the current version as a decimal string.
func (h *Handler) HandleVersion(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(strconv.FormatUint(uint64(h.source.Version()), 10))
}
