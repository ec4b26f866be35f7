package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the Fiber locals key holding the request's RayID.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a fresh RayID to every request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalsKey, uuid.NewString())
		return c.Next()
	}
}

// FromCtx returns the RayID of the request, or "" when none was assigned.
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
