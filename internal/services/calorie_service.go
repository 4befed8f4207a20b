package services

import (
	"fmt"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

// CalorieService estimates energy expenditure per session from MET values,
// set counts and rest configuration. Read-only over query results.
type CalorieService struct {
	db *gorm.DB
}

func NewCalorieService(db *gorm.DB) *CalorieService {
	return &CalorieService{db: db}
}

// calorieRow is one (session, template exercise) slice as shaped by the
// aggregation query. TotalRestSeconds already multiplies the configured
// rest by the number of logged sets because the set join fans the row out.
type calorieRow struct {
	SessionID          uint     `gorm:"column:session_id"`
	Date               string   `gorm:"column:date"`
	DurationMinutes    *int     `gorm:"column:duration_minutes"`
	TemplateExerciseID *uint    `gorm:"column:template_exercise_id"`
	MET                *float64 `gorm:"column:met"`
	RestSeconds        *int     `gorm:"column:rest_seconds"`
	Sets               int      `gorm:"column:sets"`
	TotalRestSeconds   int      `gorm:"column:total_rest_seconds"`
}

// BySession returns one calorie estimate per session of the user in the
// date range. A user without a recorded body weight yields an empty result;
// the MET formula needs the weight.
func (s *CalorieService) BySession(userID uint, from, to string) ([]dto.SessionCalories, error) {
	var user models.User
	if err := s.db.Select("weight_kg").First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []dto.SessionCalories{}, nil
		}
		return nil, fmt.Errorf("calorie user lookup: %w", err)
	}
	if user.WeightKg <= 0 {
		return []dto.SessionCalories{}, nil
	}

	var rows []calorieRow
	err := s.db.Raw(`
		SELECT s.id AS session_id,
		       to_char(s.session_date, 'YYYY-MM-DD') AS date,
		       s.duration_minutes,
		       te.id AS template_exercise_id,
		       e.met,
		       te.rest_seconds,
		       COUNT(sr.id) AS sets,
		       COALESCE(SUM(te.rest_seconds), 0) AS total_rest_seconds
		  FROM sessions s
		  LEFT JOIN session_exercises se ON se.session_id = s.id
		  LEFT JOIN template_exercises te ON te.id = se.template_exercise_id
		  LEFT JOIN exercises e ON e.id = te.exercise_id
		  LEFT JOIN set_records sr ON sr.session_id = s.id
		       AND sr.template_exercise_id = te.id
		 WHERE s.user_id = ?
		   AND s.session_date BETWEEN ? AND ?
		 GROUP BY s.id, s.session_date, s.duration_minutes, te.id, e.met, te.rest_seconds
		 ORDER BY s.session_date, s.id`, userID, from, to).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("calorie rows query: %w", err)
	}

	packs := buildSessionPacks(rows)
	out := make([]dto.SessionCalories, 0, len(packs))
	for _, p := range packs {
		out = append(out, estimateSessionCalories(p, user.WeightKg))
	}
	return out, nil
}

// ByUserRange returns the per-session estimates plus the daily kcal rollup.
func (s *CalorieService) ByUserRange(userID uint, from, to string) (*dto.CaloriesRangeResponse, error) {
	sessions, err := s.BySession(userID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.CaloriesRangeResponse{
		Sessions: sessions,
		Daily:    dailyRollup(sessions),
	}, nil
}

// buildSessionPacks groups the flat query rows into one pack per session,
// preserving query order.
func buildSessionPacks(rows []calorieRow) []sessionPack {
	index := make(map[uint]int)
	packs := make([]sessionPack, 0)
	for _, r := range rows {
		i, ok := index[r.SessionID]
		if !ok {
			packs = append(packs, sessionPack{
				SessionID:       r.SessionID,
				Date:            r.Date,
				DurationMinutes: r.DurationMinutes,
			})
			i = len(packs) - 1
			index[r.SessionID] = i
		}
		if r.TemplateExerciseID == nil {
			// session without any planned exercises; nothing to add
			continue
		}
		met := defaultMET
		if r.MET != nil && *r.MET > 0 {
			met = *r.MET
		}
		packs[i].Exercises = append(packs[i].Exercises, exerciseLoad{
			MET:              met,
			Sets:             r.Sets,
			RestSeconds:      r.RestSeconds,
			TotalRestSeconds: r.TotalRestSeconds,
		})
	}
	return packs
}
