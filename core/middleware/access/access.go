package access

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// New returns a middleware that writes one line per request to log:
// the colorized status code, the elapsed time in milliseconds and the path.
// The timestamp comes from the logger's encoder.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		// The context is recycled after the handler returns.
		path := utils.CopyString(c.Path())

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		log.Info(Line(status, time.Since(start), path))
		return err
	}
}

// Line formats an access line without the timestamp.
func Line(status int, elapsed time.Duration, path string) string {
	ms := float64(elapsed) / float64(time.Millisecond)
	return fmt.Sprintf("%s %.3fms %s", color.New(StatusColor(status)).Sprint(status), ms, path)
}

// StatusColor picks the color for a status code by class.
func StatusColor(status int) color.Attribute {
	switch {
	case status >= 200 && status < 300:
		return color.FgGreen
	case status >= 400:
		return color.FgRed
	default:
		return color.FgYellow
	}
}
