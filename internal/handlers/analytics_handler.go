package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/middleware"
	"github.com/stayhungrygym/backend/internal/models"
	"github.com/stayhungrygym/backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Track handles POST /analytics/track. When a valid token accompanies the
// request, the authenticated identity overrides whatever the body claims.
func (h *AnalyticsHandler) Track(c *fiber.Ctx) error {
	var req dto.TrackEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	var authID *uint
	var authRole *models.Role
	if auth := middleware.CurrentUser(c); auth != nil {
		authID = &auth.ID
		authRole = &auth.Role
	}

	if err := h.analyticsService.Track(&req, authID, authRole); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingEventFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "sessionId and type are required",
			})
		case errors.Is(err, services.ErrInvalidEventType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown event type",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// UsageSummary handles GET /analytics/usage-summary?from&to (admin). Without
// an explicit range it covers the trailing 30 days.
func (h *AnalyticsHandler) UsageSummary(c *fiber.Ctx) error {
	resp, err := h.analyticsService.UsageSummary(clampDate(c.Query("from")), clampDate(c.Query("to")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}
