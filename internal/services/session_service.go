package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrIncompleteSet = errors.New("incomplete set data")

// SessionService handles the daily workout flow: today's session, exercise
// completion and set logging.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// TodaySession finds or creates today's session for the client's most
// recent active assignment. A client without an assignment gets a 200-style
// empty response (nil session id, no items), not an error.
func (s *SessionService) TodaySession(clientID uint) (*dto.TodaySessionResponse, error) {
	today := time.Now().Format("2006-01-02")
	resp := &dto.TodaySessionResponse{Date: today, Items: []dto.TodaySessionItem{}}

	var assignment models.RoutineAssignment
	err := s.db.Where("client_id = ? AND status = ?", clientID, models.AssignmentActive).
		Order("start_date DESC").
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("assignment lookup: %w", err)
	}

	var session models.Session
	err = s.db.Where("assignment_id = ? AND session_date = ?", assignment.ID, today).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		session = models.Session{
			UserID:       clientID,
			TemplateID:   assignment.TemplateID,
			AssignmentID: assignment.ID,
			SessionDate:  mustDate(today),
		}
		// the unique (assignment, date) index absorbs a concurrent create
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assignment_id"}, {Name: "session_date"}},
			DoNothing: true,
		}).Create(&session).Error
		if err == nil && session.ID == 0 {
			err = s.db.Where("assignment_id = ? AND session_date = ?", assignment.ID, today).
				First(&session).Error
		}
	}
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var items []dto.TodaySessionItem
	err = s.db.Raw(`
		SELECT te.id AS plantilla_ejercicio_id,
		       e.name AS ejercicio_nombre,
		       te.sets AS series,
		       te.reps AS repeticiones,
		       COALESCE(se.completed, false) AS completado
		  FROM template_exercises te
		  JOIN exercises e ON e.id = te.exercise_id
		  LEFT JOIN session_exercises se
		       ON se.session_id = ? AND se.template_exercise_id = te.id
		 WHERE te.template_id = ?
		 ORDER BY te.position`, session.ID, assignment.TemplateID).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("session items query: %w", err)
	}

	resp.SessionID = &session.ID
	resp.Items = items
	return resp, nil
}

// ToggleExercise marks a template exercise done or not done for a session.
func (s *SessionService) ToggleExercise(sessionID, templateExerciseID uint, completed bool) error {
	record := models.SessionExercise{
		SessionID:          sessionID,
		TemplateExerciseID: templateExerciseID,
		Completed:          completed,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "template_exercise_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("toggle exercise: %w", err)
	}
	return nil
}

// AddSet upserts one logged set. Resubmitting the same (session, exercise,
// set number) overwrites reps/weight/effort instead of adding a row.
func (s *SessionService) AddSet(sessionID uint, req *dto.AddSetRequest) error {
	if sessionID == 0 || req.TemplateExerciseID == 0 || req.SetNumber == 0 ||
		req.Reps == 0 || req.WeightKg == nil {
		return ErrIncompleteSet
	}

	reps := req.Reps
	record := models.SetRecord{
		SessionID:          sessionID,
		TemplateExerciseID: req.TemplateExerciseID,
		SetNumber:          req.SetNumber,
		Reps:               &reps,
		WeightKg:           req.WeightKg,
		RPE:                req.RPE,
		IsMax:              req.IsMax,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "template_exercise_id"}, {Name: "set_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"reps", "weight_kg", "rpe", "is_max"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("set upsert: %w", err)
	}
	return nil
}

// Summary returns max weight, max reps and best estimated 1RM per exercise
// of the session, in template order.
func (s *SessionService) Summary(sessionID uint) (*dto.SessionSummaryResponse, error) {
	var rows []dto.SessionSummaryRow
	err := s.db.Raw(`
		SELECT te.id AS plantilla_ejercicio_id,
		       e.name AS ejercicio,
		       MAX(sr.weight_kg) AS max_peso,
		       MAX(sr.reps) AS max_reps,
		       MAX(ROUND((sr.weight_kg * (1 + sr.reps / 30.0))::numeric, 2)) AS est_1rm
		  FROM set_records sr
		  JOIN template_exercises te ON te.id = sr.template_exercise_id
		  JOIN exercises e ON e.id = te.exercise_id
		 WHERE sr.session_id = ?
		 GROUP BY te.id, e.name
		 ORDER BY MIN(te.position)`, sessionID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("session summary query: %w", err)
	}
	return &dto.SessionSummaryResponse{SessionID: sessionID, Summary: rows}, nil
}

// Sets lists the logged sets of one exercise in a session.
func (s *SessionService) Sets(sessionID, templateExerciseID uint) ([]dto.SetRow, error) {
	var rows []dto.SetRow
	err := s.db.Model(&models.SetRecord{}).
		Select("set_number, reps, weight_kg, rpe, is_max, created_at").
		Where("session_id = ? AND template_exercise_id = ?", sessionID, templateExerciseID).
		Order("set_number").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("set list query: %w", err)
	}
	return rows, nil
}

func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
