package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/stayhungrygym/backend/internal/models"
)

func rolesApp(identity *AuthUser, allowed ...models.Role) *fiber.App {
	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if identity != nil {
				SetCurrentUser(c, identity)
			}
			return c.Next()
		},
		RequireRoles(allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	app := rolesApp(&AuthUser{ID: 1, Role: models.RoleAdmin}, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	app := rolesApp(&AuthUser{ID: 2, Role: models.RoleClient}, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesRejectsMissingIdentity(t *testing.T) {
	app := rolesApp(nil, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRolesMultipleAllowed(t *testing.T) {
	app := rolesApp(&AuthUser{ID: 3, Role: models.RoleTrainer}, models.RoleTrainer, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
