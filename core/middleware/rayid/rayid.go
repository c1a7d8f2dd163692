package rayid

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the request/response header carrying the RayID.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the Fiber locals key the RayID is stored under.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns a RayID to every request.
// A RayID supplied by the caller is reused so traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Header values alias the request buffer; the id outlives it in locals.
		id := strings.Clone(c.Get(HeaderName))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromCtx returns the RayID of the current request, or "" if none was set.
func FromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
