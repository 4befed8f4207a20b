package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// UsersChurn handles GET /reports/users-churn?from&to, grouping signups and
// deactivations per calendar month.
func (h *ReportHandler) UsersChurn(c *fiber.Ctx) error {
	from := clampDate(c.Query("from", "1900-01-01"))
	to := clampDate(c.Query("to", "2100-01-01"))

	rows, err := h.reportService.UsersChurn(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// Adherence handles GET /reports/adherence?days.
func (h *ReportHandler) Adherence(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}

	resp, err := h.reportService.Adherence(days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

// TrainingVolume handles GET /reports/training-volume?from&to, total load per
// ISO week.
func (h *ReportHandler) TrainingVolume(c *fiber.Ctx) error {
	from := clampDate(c.Query("from", "1900-01-01"))
	to := clampDate(c.Query("to", "2100-01-01"))

	rows, err := h.reportService.TrainingVolume(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// PRs handles GET /reports/prs?from&to&limit: best estimated 1RM per
// exercise, user and day within the range.
func (h *ReportHandler) PRs(c *fiber.Ctx) error {
	from := clampDate(c.Query("from", "1900-01-01"))
	to := clampDate(c.Query("to", "2100-01-01"))

	limit := services.DefaultPRLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > services.MaxPRLimit {
		limit = services.MaxPRLimit
	}

	rows, err := h.reportService.PRsInRange(from, to, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// TrainerClients handles GET /reports/trainer-clients: active client count
// per trainer plus clients without one.
func (h *ReportHandler) TrainerClients(c *fiber.Ctx) error {
	resp, err := h.reportService.TrainerClientCounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}
