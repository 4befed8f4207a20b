package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/middleware"
	"github.com/stayhungrygym/backend/internal/services"
)

type TrainerHandler struct {
	trainerService *services.TrainerService
}

func NewTrainerHandler(trainerService *services.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// MyClients handles GET /trainers/my-clients?entrenadorId.
func (h *TrainerHandler) MyClients(c *fiber.Ctx) error {
	trainerID := uint(c.QueryInt("entrenadorId"))
	if trainerID == 0 {
		if auth := middleware.CurrentUser(c); auth != nil {
			trainerID = auth.ID
		}
	}
	if trainerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "entrenadorId is required",
		})
	}

	rows, err := h.trainerService.MyClients(trainerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}

// AssignClient handles POST /trainers/assign-client, linking a client to a
// trainer (reactivating a previous link when one exists).
func (h *TrainerHandler) AssignClient(c *fiber.Ctx) error {
	var req dto.AssignClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.TrainerID == 0 || req.ClientID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "entrenadorId and clienteId are required",
		})
	}

	if err := h.trainerService.AssignClient(req.TrainerID, req.ClientID); err != nil {
		if errors.Is(err, services.ErrBadRolePair) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "entrenadorId must be a trainer and clienteId a client",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// SearchClients handles GET /trainers/search-clients?q&unassignedOnly.
func (h *TrainerHandler) SearchClients(c *fiber.Ctx) error {
	q := c.Query("q")
	unassignedOnly := c.Query("unassignedOnly") == "1" || c.Query("unassignedOnly") == "true"

	rows, err := h.trainerService.SearchClients(q, unassignedOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}
