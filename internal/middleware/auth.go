package middleware

import (
	"strconv"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stayhungrygym/backend/internal/config"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

const authUserKey = "authUser"

// AuthUser is the identity attached to a request after the bearer token has
// been verified and the account resolved.
type AuthUser struct {
	ID   uint
	Role models.Role
	Name string
}

// JWTProtected verifies the bearer token signature and expiry.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// LoadUser resolves the token subject to an account and attaches the acting
// identity to the request. Deactivated accounts are rejected even when the
// token itself is still valid.
func LoadUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		sub, _ := claims["sub"].(string)
		userID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", uint(userID)).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !user.Active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Account is deactivated",
			})
		}

		c.Locals(authUserKey, &AuthUser{ID: user.ID, Role: user.Role, Name: user.Name})
		return c.Next()
	}
}

// CurrentUser returns the identity attached by LoadUser, or nil.
func CurrentUser(c *fiber.Ctx) *AuthUser {
	u, _ := c.Locals(authUserKey).(*AuthUser)
	return u
}

// SetCurrentUser attaches an identity directly. Used by tests.
func SetCurrentUser(c *fiber.Ctx, u *AuthUser) {
	c.Locals(authUserKey, u)
}
