package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDuplicatePosition = errors.New("duplicate exercise position")
	ErrBadStartDate      = errors.New("invalid start date")
)

// RoutineService manages trainer-built templates and their assignment to
// clients.
type RoutineService struct {
	db *gorm.DB
}

func NewRoutineService(db *gorm.DB) *RoutineService {
	return &RoutineService{db: db}
}

// CreateTemplate creates a reusable template (no client bound yet).
func (s *RoutineService) CreateTemplate(req *dto.CreateTemplateRequest) (uint, error) {
	if req.TrainerID == 0 || req.Name == "" {
		return 0, validationErr("trainer id and name are required")
	}

	template := models.RoutineTemplate{
		Name:        req.Name,
		Description: req.Description,
		TrainerID:   req.TrainerID,
		Active:      true,
	}
	if err := s.db.Create(&template).Error; err != nil {
		return 0, fmt.Errorf("create template: %w", err)
	}
	return template.ID, nil
}

// AddExercises bulk-inserts the exercise slots of a template. Positions
// must be unique within the batch; the DB constraint catches collisions
// with already stored rows.
func (s *RoutineService) AddExercises(templateID uint, items []dto.TemplateExerciseItem) (int, error) {
	if templateID == 0 || len(items) == 0 {
		return 0, validationErr("template id and at least one exercise are required")
	}

	seen := make(map[int]bool, len(items))
	rows := make([]models.TemplateExercise, 0, len(items))
	for i, it := range items {
		if it.ExerciseID == 0 || it.Position == 0 || it.Sets == 0 || it.Reps == 0 {
			return 0, validationErr("row %d: missing required fields", i+1)
		}
		if seen[it.Position] {
			return 0, ErrDuplicatePosition
		}
		seen[it.Position] = true

		rows = append(rows, models.TemplateExercise{
			TemplateID:     templateID,
			ExerciseID:     it.ExerciseID,
			Position:       it.Position,
			Sets:           it.Sets,
			Reps:           it.Reps,
			TargetWeightKg: it.TargetWeightKg,
			RestSeconds:    it.RestSeconds,
			Notes:          it.Notes,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("insert template exercises: %w", err)
	}
	return len(rows), nil
}

// Assign binds a template to a client starting at the given date.
func (s *RoutineService) Assign(req *dto.AssignRoutineRequest) (uint, error) {
	if req.TemplateID == 0 || req.TrainerID == 0 || req.ClientID == 0 || req.StartDate == "" {
		return 0, validationErr("template, trainer, client and start date are required")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0, ErrBadStartDate
	}

	assignment := models.RoutineAssignment{
		TemplateID: req.TemplateID,
		TrainerID:  req.TrainerID,
		ClientID:   req.ClientID,
		StartDate:  start,
		Status:     models.AssignmentActive,
		Notes:      req.Notes,
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return 0, fmt.Errorf("create assignment: %w", err)
	}
	return assignment.ID, nil
}
