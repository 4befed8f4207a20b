package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/middleware"
	"github.com/stayhungrygym/backend/internal/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Today handles GET /sessions/today?clienteId: finds or creates today's
// session for the client's active assignment.
func (h *SessionHandler) Today(c *fiber.Ctx) error {
	clientID := uint(c.QueryInt("clienteId"))
	if clientID == 0 {
		if auth := middleware.CurrentUser(c); auth != nil {
			clientID = auth.ID
		}
	}
	if clientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "clienteId is required",
		})
	}

	resp, err := h.sessionService.TodaySession(clientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

// ToggleExercise handles POST /sessions/:id/exercises/:templateExerciseId/toggle.
func (h *SessionHandler) ToggleExercise(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid session id",
		})
	}
	templateExerciseID, err := c.ParamsInt("templateExerciseId")
	if err != nil || templateExerciseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid template exercise id",
		})
	}

	var req dto.ToggleExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.sessionService.ToggleExercise(uint(sessionID), uint(templateExerciseID), req.Completed); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddSet handles POST /sessions/:id/sets, upserting by set number.
func (h *SessionHandler) AddSet(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid session id",
		})
	}

	var req dto.AddSetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.sessionService.AddSet(uint(sessionID), &req); err != nil {
		if errors.Is(err, services.ErrIncompleteSet) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "plantillaEjercicioId, setNum and reps are required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// Summary handles GET /sessions/:id/summary.
func (h *SessionHandler) Summary(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid session id",
		})
	}

	resp, err := h.sessionService.Summary(uint(sessionID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(resp)
}

// Sets handles GET /sessions/:id/exercises/:templateExerciseId/sets.
func (h *SessionHandler) Sets(c *fiber.Ctx) error {
	sessionID, err := c.ParamsInt("id")
	if err != nil || sessionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid session id",
		})
	}
	templateExerciseID, err := c.ParamsInt("templateExerciseId")
	if err != nil || templateExerciseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid template exercise id",
		})
	}

	rows, err := h.sessionService.Sets(uint(sessionID), uint(templateExerciseID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}
