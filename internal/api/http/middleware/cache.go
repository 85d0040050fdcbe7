package middleware

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// NeverCache marks responses as uncacheable by browsers and proxies.
func NeverCache() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "max-age=0, no-cache, no-store, must-revalidate, private")
		c.Set(fiber.HeaderExpires, time.Now().UTC().Format(http.TimeFormat))
		return err
	}
}
