package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the fiber locals key under which the ray ID is stored.
const LocalsKey = "ray_id"

// HeaderName is the request/response header carrying the ray ID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns every request a ray ID. An incoming
// X-Ray-ID header is honored so callers can correlate across hops.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
