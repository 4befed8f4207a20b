package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBadRolePair = errors.New("ids do not match a trainer and a client")

// TrainerService manages the trainer-to-client links and client lookups.
type TrainerService struct {
	db *gorm.DB
}

func NewTrainerService(db *gorm.DB) *TrainerService {
	return &TrainerService{db: db}
}

// MyClients lists the active clients assigned to a trainer, by name.
func (s *TrainerService) MyClients(trainerID uint) ([]dto.ClientRow, error) {
	var rows []dto.ClientRow
	err := s.db.Raw(`
		SELECT u.id, u.name, u.email, u.age, u.weight_kg, u.height_m
		  FROM trainer_clients tc
		  JOIN users u ON u.id = tc.client_id
		 WHERE tc.trainer_id = ? AND tc.active
		 ORDER BY u.name`, trainerID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("client list query: %w", err)
	}
	return rows, nil
}

// AssignClient links a client to a trainer. Re-assigning an existing pair
// just reactivates the link.
func (s *TrainerService) AssignClient(trainerID, clientID uint) error {
	var trainer, client models.User
	if err := s.db.Where("id = ? AND role = ?", trainerID, models.RoleTrainer).First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadRolePair
		}
		return fmt.Errorf("trainer lookup: %w", err)
	}
	if err := s.db.Where("id = ? AND role = ?", clientID, models.RoleClient).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadRolePair
		}
		return fmt.Errorf("client lookup: %w", err)
	}

	link := models.TrainerClient{TrainerID: trainerID, ClientID: clientID, Active: true}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "trainer_id"}, {Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active"}),
	}).Create(&link).Error
	if err != nil {
		return fmt.Errorf("assign client: %w", err)
	}
	return nil
}

// SearchClients finds clients by name tokens (all must match) or full email
// substring. With unassignedOnly only clients without an active trainer
// link are returned. Queries shorter than two characters yield nothing.
func (s *TrainerService) SearchClients(q string, unassignedOnly bool) ([]dto.ClientRow, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return []dto.ClientRow{}, nil
	}

	query := s.db.Model(&models.User{}).
		Select("id, name, email, age, weight_kg, height_m").
		Where("role = ? AND active", models.RoleClient)

	nameMatch := s.db.Session(&gorm.Session{NewDB: true})
	first := true
	for _, token := range strings.Fields(q) {
		cond := s.db.Session(&gorm.Session{NewDB: true}).
			Where("name ILIKE ?", "%"+token+"%")
		if first {
			nameMatch = cond
			first = false
		} else {
			nameMatch = nameMatch.Where(cond)
		}
	}
	emailMatch := s.db.Session(&gorm.Session{NewDB: true}).
		Where("email ILIKE ?", "%"+q+"%")
	query = query.Where(nameMatch.Or(emailMatch))

	if unassignedOnly {
		query = query.Where(`NOT EXISTS (
			SELECT 1 FROM trainer_clients tc
			 WHERE tc.client_id = users.id AND tc.active)`)
	}

	var rows []dto.ClientRow
	if err := query.Order("name").Limit(15).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("client search query: %w", err)
	}
	return rows, nil
}
