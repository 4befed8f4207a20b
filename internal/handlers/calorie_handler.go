package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/middleware"
	"github.com/stayhungrygym/backend/internal/services"
)

type CalorieHandler struct {
	calorieService *services.CalorieService
}

func NewCalorieHandler(calorieService *services.CalorieService) *CalorieHandler {
	return &CalorieHandler{calorieService: calorieService}
}

// targetUserID resolves ?usuarioId, falling back to the authenticated user.
func targetUserID(c *fiber.Ctx) uint {
	if id := c.QueryInt("usuarioId"); id > 0 {
		return uint(id)
	}
	if auth := middleware.CurrentUser(c); auth != nil {
		return auth.ID
	}
	return 0
}

// BySession handles GET /calories/by-session?usuarioId&from&to.
func (h *CalorieHandler) BySession(c *fiber.Ctx) error {
	userID := targetUserID(c)
	from, to := c.Query("from"), c.Query("to")
	if userID == 0 || from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "usuarioId, from and to are required",
		})
	}

	rows, err := h.calorieService.BySession(userID, clampDate(from), clampDate(to))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// ByRange handles GET /calories/by-user-range?usuarioId&from&to: per-session
// estimates plus a daily rollup.
func (h *CalorieHandler) ByRange(c *fiber.Ctx) error {
	userID := targetUserID(c)
	from, to := c.Query("from"), c.Query("to")
	if userID == 0 || from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "usuarioId, from and to are required",
		})
	}

	resp, err := h.calorieService.ByUserRange(userID, clampDate(from), clampDate(to))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}
