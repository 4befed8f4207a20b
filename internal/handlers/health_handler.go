package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stayhungrygym/backend/internal/database"
	"github.com/stayhungrygym/backend/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "down"
	}

	return c.JSON(dto.HealthResponse{
		Success:   dbStatus == "up",
		Message:   "Stay Hungry Gym API",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
