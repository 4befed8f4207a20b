package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
)

// RequireRoles gates a route to the given allow-list. The rejection is a
// generic forbidden; it does not reveal which roles would have passed.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.Role.OneOf(allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient permissions",
			})
		}
		return c.Next()
	}
}
