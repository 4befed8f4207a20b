package models

import (
	"time"
)

// Assignment status values.
const (
	AssignmentActive    = "Activa"
	AssignmentPaused    = "Pausada"
	AssignmentCompleted = "Completada"
)

// RoutineTemplate is a trainer-owned workout plan. ClientID is nil for
// reusable templates and set when a template was built for one client.
type RoutineTemplate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"nombre"`
	Description *string   `gorm:"type:text" json:"descripcion"`
	TrainerID   uint      `gorm:"not null;index" json:"entrenador_id"`
	ClientID    *uint     `gorm:"index" json:"cliente_id"`
	Active      bool      `gorm:"not null;default:true" json:"activa"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// TemplateExercise is one exercise slot inside a template. Position is
// unique per template; the bulk insert endpoint relies on that constraint.
type TemplateExercise struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	TemplateID     uint     `gorm:"not null;uniqueIndex:idx_template_position" json:"plantilla_id"`
	ExerciseID     uint     `gorm:"not null;index" json:"ejercicio_id"`
	Position       int      `gorm:"not null;uniqueIndex:idx_template_position" json:"orden"`
	Sets           int      `gorm:"not null" json:"series"`
	Reps           int      `gorm:"not null" json:"repeticiones"`
	TargetWeightKg *float64 `json:"peso_objetivo"`
	RestSeconds    *int     `json:"descanso_segundos"`
	Notes          *string  `gorm:"type:text" json:"notas"`
}

// RoutineAssignment links a template to a client. The most recent active
// assignment drives which template the client's daily session follows.
type RoutineAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TemplateID uint      `gorm:"not null;index" json:"plantilla_id"`
	TrainerID  uint      `gorm:"not null;index" json:"entrenador_id"`
	ClientID   uint      `gorm:"not null;index" json:"cliente_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"fecha_inicio"`
	Status     string    `gorm:"size:20;not null;default:'Activa'" json:"estado"`
	Notes      *string   `gorm:"type:text" json:"notas"`
}
