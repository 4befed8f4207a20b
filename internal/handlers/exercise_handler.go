package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/services"
)

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// Search handles GET /exercises/search?q. Queries under two characters
// return an empty list.
func (h *ExerciseHandler) Search(c *fiber.Ctx) error {
	rows, err := h.exerciseService.Search(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(rows)
}
