package services

import (
	"fmt"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

const strengthPRLimit = 50

// ProgressService serves the per-client progress views: body weight, BMI
// and strength PR history.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// WeightHistory lists the user's body-weight measurements over a trailing
// window of days, oldest first.
func (s *ProgressService) WeightHistory(userID uint, days int) ([]dto.WeightPoint, error) {
	var rows []dto.WeightPoint
	err := s.db.Raw(`
		SELECT to_char(measured_at, 'YYYY-MM-DD') AS date,
		       weight_kg AS weight
		  FROM body_metrics
		 WHERE user_id = ?
		   AND measured_at >= CURRENT_DATE - ?
		 ORDER BY measured_at`, userID, days).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("weight history query: %w", err)
	}
	return rows, nil
}

// BMIHistory derives a BMI series from the weight measurements using the
// user's current height. No recorded height means no BMI: empty result.
func (s *ProgressService) BMIHistory(userID uint, days int) ([]dto.BMIPoint, error) {
	var user models.User
	if err := s.db.Select("height_m").First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []dto.BMIPoint{}, nil
		}
		return nil, fmt.Errorf("bmi user lookup: %w", err)
	}
	if user.HeightM <= 0 {
		return []dto.BMIPoint{}, nil
	}

	weights, err := s.WeightHistory(userID, days)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BMIPoint, 0, len(weights))
	for _, w := range weights {
		out = append(out, dto.BMIPoint{
			Date:     w.Date,
			WeightKg: w.WeightKg,
			BMI:      round2(w.WeightKg / (user.HeightM * user.HeightM)),
		})
	}
	return out, nil
}

// StrengthPRs returns the user's best estimated 1RM per exercise over a
// trailing window, sorted by est_1rm descending. NULL weight/rep sets are
// excluded before ranking.
func (s *ProgressService) StrengthPRs(userID uint, days int) ([]dto.PRRow, error) {
	var rows []prCandidate
	err := s.db.Raw(`
		SELECT te.exercise_id,
		       e.name AS exercise_name,
		       s.user_id,
		       to_char(s.session_date, 'YYYY-MM-DD') AS day,
		       sr.weight_kg,
		       sr.reps
		  FROM set_records sr
		  JOIN sessions s ON s.id = sr.session_id
		  JOIN template_exercises te ON te.id = sr.template_exercise_id
		  JOIN exercises e ON e.id = te.exercise_id
		 WHERE sr.weight_kg IS NOT NULL
		   AND sr.reps IS NOT NULL
		   AND s.user_id = ?
		   AND s.session_date >= CURRENT_DATE - ?`, userID, days).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("strength pr query: %w", err)
	}

	return rankPRs(rows, false, strengthPRLimit), nil
}
