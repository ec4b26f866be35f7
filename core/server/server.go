package server

import (
	"errors"
	"net"

	"hotserve/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Listen binds the loopback TCP address for cfg.
func Listen(cfg Config) (net.Listener, error) {
	return net.Listen("tcp4", cfg.Address())
}

// NewApp creates the Fiber application used to serve the source directory.
// Handler errors that end up as 5xx responses are reported on log.
func NewApp(log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own banner
		// Request paths map onto case-sensitive file names.
		CaseSensitive: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("Request failed",
					zap.String("path", c.Path()),
					zap.String(rayid.LocalsKey, rayid.FromCtx(c)),
					zap.Error(err),
				)
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
}
