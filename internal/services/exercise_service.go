package services

import (
	"fmt"
	"strings"

	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

// ExerciseService serves catalog lookups for the routine builder.
type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

// Search finds active catalog exercises by name substring. Queries shorter
// than two characters yield nothing.
func (s *ExerciseService) Search(q string) ([]models.Exercise, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return []models.Exercise{}, nil
	}

	var rows []models.Exercise
	err := s.db.Where("active AND name ILIKE ?", "%"+q+"%").
		Order("name").
		Limit(10).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("exercise search query: %w", err)
	}
	return rows, nil
}
