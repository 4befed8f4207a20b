package services

import (
	"fmt"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

// Range-wide PR report limits.
const (
	DefaultPRLimit = 100
	MaxPRLimit     = 500
)

// ReportService derives the admin-facing business metrics (churn,
// adherence, volume, PRs, client distribution) from raw session and set
// rows. It only reads; all mutation happens in the CRUD services.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// UsersChurn counts registrations and deactivations per calendar month in
// [from, to] and merges the two series.
func (s *ReportService) UsersChurn(from, to string) ([]dto.ChurnRow, error) {
	var signups []monthCount
	err := s.db.Raw(`
		SELECT to_char(registered_at, 'YYYY-MM') AS period, COUNT(*) AS n
		  FROM users
		 WHERE registered_at::date BETWEEN ? AND ?
		 GROUP BY 1
		 ORDER BY 1`, from, to).Scan(&signups).Error
	if err != nil {
		return nil, fmt.Errorf("churn signups query: %w", err)
	}

	var deactivations []monthCount
	err = s.db.Raw(`
		SELECT to_char(deactivated_at, 'YYYY-MM') AS period, COUNT(*) AS n
		  FROM users
		 WHERE deactivated_at IS NOT NULL
		   AND deactivated_at::date BETWEEN ? AND ?
		 GROUP BY 1
		 ORDER BY 1`, from, to).Scan(&deactivations).Error
	if err != nil {
		return nil, fmt.Errorf("churn deactivations query: %w", err)
	}

	return mergeChurn(signups, deactivations), nil
}

// Adherence computes, for a trailing window of days, the fraction of active
// clients with at least one logged set: overall and per trainer.
func (s *ReportService) Adherence(days int) (*dto.AdherenceResponse, error) {
	if days < 1 {
		days = 1
	}

	var totalClients int64
	err := s.db.Model(&models.User{}).
		Where("role = ? AND active", models.RoleClient).
		Count(&totalClients).Error
	if err != nil {
		return nil, fmt.Errorf("adherence client count: %w", err)
	}

	var withSets int
	err = s.db.Raw(`
		SELECT COUNT(DISTINCT s.user_id)
		  FROM sessions s
		  JOIN set_records sr ON sr.session_id = s.id
		 WHERE s.session_date >= CURRENT_DATE - ?`, days).Scan(&withSets).Error
	if err != nil {
		return nil, fmt.Errorf("adherence sets query: %w", err)
	}

	type trainerRow struct {
		Trainer         string `gorm:"column:trainer"`
		TotalClients    int    `gorm:"column:total_clients"`
		ClientsWithSets int    `gorm:"column:clients_with_sets"`
	}
	var trainerRows []trainerRow
	err = s.db.Raw(`
		SELECT COALESCE(t.name, 'Entrenador ' || t.id) AS trainer,
		       COUNT(DISTINCT tc.client_id) AS total_clients,
		       COUNT(DISTINCT CASE WHEN s.session_date >= CURRENT_DATE - ?
		                            AND sr.session_id IS NOT NULL
		                           THEN tc.client_id END) AS clients_with_sets
		  FROM users t
		  LEFT JOIN trainer_clients tc ON tc.trainer_id = t.id AND tc.active
		  LEFT JOIN sessions s ON s.user_id = tc.client_id
		  LEFT JOIN set_records sr ON sr.session_id = s.id
		 WHERE t.role = ?
		 GROUP BY t.id, t.name
		 ORDER BY 1`, days, models.RoleTrainer).Scan(&trainerRows).Error
	if err != nil {
		return nil, fmt.Errorf("adherence trainer query: %w", err)
	}

	resp := &dto.AdherenceResponse{
		Overall: dto.AdherenceOverall{
			ClientsWithSets: withSets,
			TotalClients:    int(totalClients),
			AdherencePct:    adherencePct(withSets, int(totalClients)),
		},
		ByTrainer: make([]dto.TrainerAdherenceRow, 0, len(trainerRows)),
	}
	for _, r := range trainerRows {
		resp.ByTrainer = append(resp.ByTrainer, dto.TrainerAdherenceRow{
			Trainer:         r.Trainer,
			TotalClients:    r.TotalClients,
			ClientsWithSets: r.ClientsWithSets,
			AdherencePct:    adherencePct(r.ClientsWithSets, r.TotalClients),
		})
	}
	return resp, nil
}

// TrainingVolume sums weight*reps grouped by ISO week for the date range.
func (s *ReportService) TrainingVolume(from, to string) ([]dto.VolumeRow, error) {
	var rows []dto.VolumeRow
	err := s.db.Raw(`
		SELECT to_char(s.session_date, 'IYYY-"W"IW') AS iso_week,
		       ROUND(SUM(sr.weight_kg * sr.reps)::numeric, 2) AS carga_total
		  FROM set_records sr
		  JOIN sessions s ON s.id = sr.session_id
		 WHERE s.session_date BETWEEN ? AND ?
		   AND sr.weight_kg IS NOT NULL
		   AND sr.reps IS NOT NULL
		 GROUP BY 1
		 ORDER BY 1`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("volume query: %w", err)
	}
	return rows, nil
}

// PRsInRange returns the best estimated 1RM per (exercise, user, day) in
// the range, sorted by est_1rm descending and capped at limit. Sets with a
// NULL weight or rep count never enter the ranking.
func (s *ReportService) PRsInRange(from, to string, limit int) ([]dto.PRRow, error) {
	if limit < 1 {
		limit = DefaultPRLimit
	}
	if limit > MaxPRLimit {
		limit = MaxPRLimit
	}

	var rows []prCandidate
	err := s.db.Raw(`
		SELECT te.exercise_id,
		       e.name AS exercise_name,
		       s.user_id,
		       u.name AS user_name,
		       to_char(s.session_date, 'YYYY-MM-DD') AS day,
		       sr.weight_kg,
		       sr.reps
		  FROM set_records sr
		  JOIN sessions s ON s.id = sr.session_id
		  JOIN template_exercises te ON te.id = sr.template_exercise_id
		  JOIN exercises e ON e.id = te.exercise_id
		  JOIN users u ON u.id = s.user_id
		 WHERE sr.weight_kg IS NOT NULL
		   AND sr.reps IS NOT NULL
		   AND s.session_date BETWEEN ? AND ?`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("pr candidates query: %w", err)
	}

	return rankPRs(rows, true, limit), nil
}

// TrainerClientCounts returns the active client count per trainer plus the
// number of clients assigned to nobody.
func (s *ReportService) TrainerClientCounts() (*dto.TrainerClientsResponse, error) {
	var rows []dto.TrainerClientsRow
	err := s.db.Raw(`
		SELECT COALESCE(t.name, 'Entrenador ' || t.id) AS entrenador,
		       COUNT(tc.client_id) AS clientes
		  FROM users t
		  LEFT JOIN trainer_clients tc ON tc.trainer_id = t.id AND tc.active
		 WHERE t.role = ?
		 GROUP BY t.id, t.name
		 ORDER BY 2 DESC, 1 ASC`, models.RoleTrainer).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("trainer clients query: %w", err)
	}

	var unassigned int
	err = s.db.Raw(`
		SELECT COUNT(*)
		  FROM users c
		 WHERE c.role = ? AND c.active
		   AND NOT EXISTS (
		       SELECT 1 FROM trainer_clients tc
		        WHERE tc.client_id = c.id AND tc.active)`, models.RoleClient).
		Scan(&unassigned).Error
	if err != nil {
		return nil, fmt.Errorf("unassigned clients query: %w", err)
	}

	return &dto.TrainerClientsResponse{Rows: rows, Unassigned: unassigned}, nil
}
