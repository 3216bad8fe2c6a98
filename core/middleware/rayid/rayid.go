// Package rayid assigns a unique ray ID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key the ray ID is stored under.
const LocalsKey = "ray_id"

// New creates the ray ID middleware. An incoming X-Ray-ID header is honored
// so upstream proxies can correlate, otherwise a fresh UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rayID := c.Get(HeaderName)
		if rayID == "" {
			rayID = uuid.NewString()
		}
		c.Locals(LocalsKey, rayID)
		c.Set(HeaderName, rayID)
		return c.Next()
	}
}
