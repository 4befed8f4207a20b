package models

import (
	"time"
)

// Session is one workout day for an assignment. The unique index on
// (assignment_id, session_date) guarantees at most one session per
// assignment and calendar date.
type Session struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"usuario_id"`
	TemplateID      uint      `gorm:"not null" json:"rutina_id"`
	AssignmentID    uint      `gorm:"not null;uniqueIndex:idx_assignment_date" json:"asignacion_id"`
	SessionDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_assignment_date;index" json:"fecha_sesion"`
	DurationMinutes *int      `json:"duracion_minutos"`
	Completed       bool      `gorm:"not null;default:false" json:"completada"`
	CreatedAt       time.Time `json:"fecha_creacion"`
}

// SessionExercise tracks per-exercise completion inside a session.
type SessionExercise struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	SessionID          uint `gorm:"not null;uniqueIndex:idx_session_template_exercise" json:"sesion_id"`
	TemplateExerciseID uint `gorm:"not null;uniqueIndex:idx_session_template_exercise" json:"plantilla_ejercicio_id"`
	Completed          bool `gorm:"not null;default:false" json:"completado"`
}

// SetRecord is one logged set. Resubmitting the same
// (session, template exercise, set number) overwrites reps/weight/effort
// in place; the unique index is what makes the upsert idempotent.
type SetRecord struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	SessionID          uint      `gorm:"not null;uniqueIndex:idx_session_exercise_set" json:"sesion_id"`
	TemplateExerciseID uint      `gorm:"not null;uniqueIndex:idx_session_exercise_set" json:"plantilla_ejercicio_id"`
	SetNumber          int       `gorm:"not null;uniqueIndex:idx_session_exercise_set" json:"set_num"`
	Reps               *int      `json:"reps"`
	WeightKg           *float64  `json:"peso_kg"`
	RPE                *float64  `gorm:"column:rpe" json:"rpe"`
	IsMax              bool      `gorm:"not null;default:false" json:"es_max"`
	CreatedAt          time.Time `json:"creado_en"`
}

func (SetRecord) TableName() string { return "set_records" }
