// Package rayid tags every request with a ray ID for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName carries the ray ID on requests and responses.
	HeaderName = "X-Ray-ID"
	// LocalsKey stores the ray ID in the Fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that reuses the incoming ray ID or generates one,
// stores it in the context locals and echoes it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
