package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles membatasi akses route ke role tertentu.
func OnlyRoles(message string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
