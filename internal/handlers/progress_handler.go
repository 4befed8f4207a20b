package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/services"
)

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func progressDays(c *fiber.Ctx) int {
	days := c.QueryInt("days", 180)
	if days <= 0 {
		days = 180
	}
	return days
}

// Weight handles GET /progress/weight?usuarioId&days.
func (h *ProgressHandler) Weight(c *fiber.Ctx) error {
	userID := targetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "usuarioId is required",
		})
	}

	rows, err := h.progressService.WeightHistory(userID, progressDays(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// BMI handles GET /progress/bmi?usuarioId&days.
func (h *ProgressHandler) BMI(c *fiber.Ctx) error {
	userID := targetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "usuarioId is required",
		})
	}

	rows, err := h.progressService.BMIHistory(userID, progressDays(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// StrengthPRs handles GET /progress/strength-prs?usuarioId&days: best
// estimated 1RM per exercise for one user.
func (h *ProgressHandler) StrengthPRs(c *fiber.Ctx) error {
	userID := targetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "usuarioId is required",
		})
	}

	rows, err := h.progressService.StrengthPRs(userID, progressDays(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}
