package static

import (
	"mime"
	"net/url"
	"unicode/utf8"

	"hotserve/core/logger"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler turns resolved files into HTTP responses.
type Handler struct {
	service *Service
	snippet []byte
}

// NewHandler creates a new HTTP handler. snippet is appended to HTML bodies.
func NewHandler(service *Service, snippet []byte) *Handler {
	return &Handler{service: service, snippet: snippet}
}

// RegisterRoutes registers the file routes. The wildcard catches every path,
// so it must be registered after more specific routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleRoot)
	app.Get("/*", h.HandlePath)
}

// HandleRoot serves index.html.
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return h.respond(c, h.service.Resolve(""))
}

// HandlePath serves the file named by the request path.
func (h *Handler) HandlePath(c *fiber.Ctx) error {
	requestPath, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		// A malformed escape cannot name a file.
		return h.respond(c, ResolvedFile{Status: fiber.StatusNotFound})
	}
	return h.respond(c, h.service.Resolve(requestPath))
}

func (h *Handler) respond(c *fiber.Ctx, file ResolvedFile) error {
	l := logger.WithRayID(h.service.logger, c)

	if !file.Found() {
		l.Debug("File not found", zap.String("path", c.Path()))
		c.Status(file.Status)
		return nil
	}

	body := file.Body
	if file.Ext == "html" && utf8.Valid(body) {
		body = appendSnippet(body, h.snippet)
	}

	if mime := ContentType(file.Ext); mime != "" {
		c.Set(fiber.HeaderContentType, mime)
	} else {
		c.Response().Header.SetNoDefaultContentType(true)
	}

	l.Debug("Serving file",
		zap.String("file", file.Path),
		zap.String("size", humanize.Bytes(uint64(len(body)))),
	)
	return c.Status(file.Status).Send(body)
}

// ContentType returns the MIME type for ext, or "" when the extension is
// unknown. Fiber's table answers application/octet-stream for misses, so that
// answer only counts when the system table agrees.
func ContentType(ext string) string {
	if ext == "" {
		return ""
	}
	m := utils.GetMIME(ext)
	if m == fiber.MIMEOctetStream && mime.TypeByExtension("."+ext) != fiber.MIMEOctetStream {
		return ""
	}
	return m
}

func appendSnippet(body, snippet []byte) []byte {
	out := make([]byte, 0, len(body)+len(snippet))
	out = append(out, body...)
	return append(out, snippet...)
}
