package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request ID.
const HeaderName = "X-Request-ID"

// LocalsKey is the Fiber locals key the request ID is stored under.
const LocalsKey = "request_id"

// New returns a middleware that assigns every request a unique ID.
// An incoming X-Request-ID is honored so upstream traces carry through.
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
