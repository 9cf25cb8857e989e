package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/farehaven/travelfront/internal/config"
)

// AdminKeyRequired guards the back-office routes with a static API key
// supplied in the X-Admin-Key header. When no key is configured the admin
// surface is disabled outright.
func AdminKeyRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminAPIKey == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin API is not configured",
			})
		}

		key := c.Get("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.AdminAPIKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid admin key",
			})
		}

		return c.Next()
	}
}
