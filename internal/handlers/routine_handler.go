package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/services"
)

type RoutineHandler struct {
	routineService *services.RoutineService
}

func NewRoutineHandler(routineService *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

// CreateTemplate handles POST /routines/templates.
func (h *RoutineHandler) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.TrainerID == 0 || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "entrenadorId and nombre are required",
		})
	}

	id, err := h.routineService.CreateTemplate(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateTemplateResponse{TemplateID: id})
}

// AddExercises handles POST /routines/templates/:id/exercises. The body may
// be a bare array of items or an object with an "items" field.
func (h *RoutineHandler) AddExercises(c *fiber.Ctx) error {
	templateID, err := c.ParamsInt("id")
	if err != nil || templateID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid template id",
		})
	}

	body := c.Body()
	var items []dto.TemplateExerciseItem
	if err := json.Unmarshal(body, &items); err != nil {
		var req dto.AddExercisesRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid request body",
			})
		}
		items = req.Items
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "At least one exercise is required",
		})
	}

	inserted, err := h.routineService.AddExercises(uint(templateID), items)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrDuplicatePosition):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Duplicate position within template",
			})
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: vErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "insertados": inserted})
}

// Assign handles POST /routines/assign.
func (h *RoutineHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.TemplateID == 0 || req.TrainerID == 0 || req.ClientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "plantillaId, entrenadorId and clienteId are required",
		})
	}

	id, err := h.routineService.Assign(&req)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrBadStartDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "fechaInicio must be YYYY-MM-DD",
			})
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: vErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "asignacionId": id})
}
