// Command seed populates a development database with demo data: an admin,
// trainers with client rosters, an exercise catalog with MET values, routine
// templates, assignments and a few weeks of logged sessions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stayhungrygym/backend/internal/config"
	"github.com/stayhungrygym/backend/internal/database"
	"github.com/stayhungrygym/backend/internal/logging"
	"github.com/stayhungrygym/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	trainerCount      = 3
	clientsPerTrainer = 5
	sessionWeeks      = 6
)

func main() {
	logging.Setup()
	gofakeit.Seed(42)

	cfg := config.Load()
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seeding complete")
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hash)

	admin := models.User{
		Name:     "Admin Demo",
		Email:    "admin@stayhungry.local",
		Password: password,
		Age:      35,
		WeightKg: 75,
		HeightM:  1.75,
		Role:     models.RoleAdmin,
		Active:   true,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	exercises, err := seedExercises(db)
	if err != nil {
		return err
	}

	for t := 0; t < trainerCount; t++ {
		trainer := models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("trainer%d@stayhungry.local", t+1),
			Password: password,
			Age:      gofakeit.Number(25, 50),
			WeightKg: gofakeit.Float64Range(60, 95),
			HeightM:  gofakeit.Float64Range(1.55, 1.95),
			Role:     models.RoleTrainer,
			Active:   true,
		}
		if err := db.Where("email = ?", trainer.Email).FirstOrCreate(&trainer).Error; err != nil {
			return err
		}

		template, err := seedTemplate(db, trainer.ID, exercises)
		if err != nil {
			return err
		}

		for c := 0; c < clientsPerTrainer; c++ {
			client := models.User{
				Name:     gofakeit.Name(),
				Email:    fmt.Sprintf("client%d-%d@stayhungry.local", t+1, c+1),
				Password: password,
				Age:      gofakeit.Number(18, 60),
				WeightKg: gofakeit.Float64Range(50, 110),
				HeightM:  gofakeit.Float64Range(1.50, 2.00),
				Role:     models.RoleClient,
				Active:   gofakeit.Number(0, 9) > 0, // roughly one inactive per roster
			}
			if err := db.Where("email = ?", client.Email).FirstOrCreate(&client).Error; err != nil {
				return err
			}
			if !client.Active && client.DeactivatedAt == nil {
				now := time.Now().AddDate(0, 0, -gofakeit.Number(1, 60))
				db.Model(&client).Update("deactivated_at", now)
			}

			link := models.TrainerClient{TrainerID: trainer.ID, ClientID: client.ID, Active: true}
			if err := db.Where("trainer_id = ? AND client_id = ?", trainer.ID, client.ID).
				FirstOrCreate(&link).Error; err != nil {
				return err
			}

			if !client.Active {
				continue
			}
			if err := seedSessions(db, template, trainer.ID, client); err != nil {
				return err
			}
			if err := seedBodyMetrics(db, client); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedExercises(db *gorm.DB) ([]models.Exercise, error) {
	met := func(v float64) *float64 { return &v }
	catalog := []models.Exercise{
		{Name: "Sentadilla con barra", MuscleGroup: "Piernas", Difficulty: "Intermedio", MET: met(6.0), Active: true},
		{Name: "Press de banca", MuscleGroup: "Pecho", Difficulty: "Intermedio", MET: met(5.0), Active: true},
		{Name: "Peso muerto", MuscleGroup: "Espalda", Difficulty: "Avanzado", MET: met(6.0), Active: true},
		{Name: "Press militar", MuscleGroup: "Hombros", Difficulty: "Intermedio", MET: met(5.0), Active: true},
		{Name: "Remo con barra", MuscleGroup: "Espalda", Difficulty: "Intermedio", MET: met(5.0), Active: true},
		{Name: "Dominadas", MuscleGroup: "Espalda", Difficulty: "Avanzado", MET: met(8.0), Active: true},
		{Name: "Zancadas", MuscleGroup: "Piernas", Difficulty: "Principiante", MET: met(4.0), Active: true},
		{Name: "Curl de biceps", MuscleGroup: "Brazos", Difficulty: "Principiante", MET: met(3.5), Active: true},
		{Name: "Plancha", MuscleGroup: "Core", Difficulty: "Principiante", MET: nil, Active: true},
		{Name: "Burpees", MuscleGroup: "Full body", Difficulty: "Avanzado", MET: met(8.0), Active: true},
	}
	for i := range catalog {
		if err := db.Where("name = ?", catalog[i].Name).FirstOrCreate(&catalog[i]).Error; err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func seedTemplate(db *gorm.DB, trainerID uint, exercises []models.Exercise) (*models.RoutineTemplate, error) {
	desc := "Rutina de fuerza de cuerpo completo"
	template := models.RoutineTemplate{
		Name:        fmt.Sprintf("Fuerza total %d", trainerID),
		Description: &desc,
		TrainerID:   trainerID,
		Active:      true,
	}
	if err := db.Where("name = ? AND trainer_id = ?", template.Name, trainerID).
		FirstOrCreate(&template).Error; err != nil {
		return nil, err
	}

	var existing int64
	db.Model(&models.TemplateExercise{}).Where("template_id = ?", template.ID).Count(&existing)
	if existing > 0 {
		return &template, nil
	}

	rest := 90
	for i := 0; i < 5 && i < len(exercises); i++ {
		target := gofakeit.Float64Range(30, 90)
		slot := models.TemplateExercise{
			TemplateID:     template.ID,
			ExerciseID:     exercises[i].ID,
			Position:       i + 1,
			Sets:           gofakeit.Number(3, 5),
			Reps:           gofakeit.Number(6, 12),
			TargetWeightKg: &target,
			RestSeconds:    &rest,
		}
		if err := db.Create(&slot).Error; err != nil {
			return nil, err
		}
	}
	return &template, nil
}

func seedBodyMetrics(db *gorm.DB, client models.User) error {
	// Weekly weigh-ins drifting a little around the registered weight.
	for week := sessionWeeks; week >= 0; week-- {
		date := time.Now().AddDate(0, 0, -week*7)
		metric := models.BodyMetric{
			UserID:     client.ID,
			MeasuredAt: date,
			WeightKg:   client.WeightKg + gofakeit.Float64Range(-1.5, 1.5),
		}
		if err := db.Where("user_id = ? AND measured_at = ?", client.ID, date.Format("2006-01-02")).
			FirstOrCreate(&metric).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSessions(db *gorm.DB, template *models.RoutineTemplate, trainerID uint, client models.User) error {
	assignment := models.RoutineAssignment{
		TemplateID: template.ID,
		TrainerID:  trainerID,
		ClientID:   client.ID,
		StartDate:  time.Now().AddDate(0, 0, -sessionWeeks*7),
		Status:     models.AssignmentActive,
	}
	if err := db.Where("template_id = ? AND client_id = ?", template.ID, client.ID).
		FirstOrCreate(&assignment).Error; err != nil {
		return err
	}

	var slots []models.TemplateExercise
	if err := db.Where("template_id = ?", template.ID).Order("position").Find(&slots).Error; err != nil {
		return err
	}

	// Three workouts a week, with progressively heavier sets so the PR and
	// volume reports have a visible trend.
	for week := 0; week < sessionWeeks; week++ {
		for _, dayOffset := range []int{0, 2, 4} {
			date := time.Now().AddDate(0, 0, -((sessionWeeks-week)*7 - dayOffset))
			session := models.Session{
				UserID:       client.ID,
				TemplateID:   template.ID,
				AssignmentID: assignment.ID,
				SessionDate:  date,
				Completed:    true,
			}
			if err := db.Where("assignment_id = ? AND session_date = ?", assignment.ID, date.Format("2006-01-02")).
				FirstOrCreate(&session).Error; err != nil {
				return err
			}

			for _, slot := range slots {
				for set := 1; set <= slot.Sets; set++ {
					reps := slot.Reps - gofakeit.Number(0, 2)
					weight := *slot.TargetWeightKg + float64(week)*2.5
					record := models.SetRecord{
						SessionID:          session.ID,
						TemplateExerciseID: slot.ID,
						SetNumber:          set,
						Reps:               &reps,
						WeightKg:           &weight,
						IsMax:              set == slot.Sets,
					}
					if err := db.Where(
						"session_id = ? AND template_exercise_id = ? AND set_number = ?",
						session.ID, slot.ID, set,
					).FirstOrCreate(&record).Error; err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
