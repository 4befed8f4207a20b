package dto

import (
	"time"
)

type TodaySessionItem struct {
	TemplateExerciseID uint   `gorm:"column:plantilla_ejercicio_id" json:"plantilla_ejercicio_id"`
	ExerciseName       string `gorm:"column:ejercicio_nombre" json:"ejercicio_nombre"`
	Sets               int    `gorm:"column:series" json:"series"`
	Reps               int    `gorm:"column:repeticiones" json:"repeticiones"`
	Completed          bool   `gorm:"column:completado" json:"completado"`
}

// TodaySessionResponse keeps the "no assignment" shape of a null session id
// with an empty item list.
type TodaySessionResponse struct {
	SessionID *uint              `json:"sesionId"`
	Date      string             `json:"date"`
	Items     []TodaySessionItem `json:"items"`
}

type ToggleExerciseRequest struct {
	Completed bool `json:"completado"`
}

type AddSetRequest struct {
	TemplateExerciseID uint     `json:"plantillaEjercicioId"`
	SetNumber          int      `json:"setNum"`
	Reps               int      `json:"reps"`
	WeightKg           *float64 `json:"pesoKg"`
	RPE                *float64 `json:"rpe"`
	IsMax              bool     `json:"esMax"`
}

type SessionSummaryRow struct {
	TemplateExerciseID uint    `gorm:"column:plantilla_ejercicio_id" json:"plantilla_ejercicio_id"`
	Exercise           string  `gorm:"column:ejercicio" json:"ejercicio"`
	MaxWeight          float64 `gorm:"column:max_peso" json:"max_peso"`
	MaxReps            int     `gorm:"column:max_reps" json:"max_reps"`
	Est1RM             float64 `gorm:"column:est_1rm" json:"est_1rm"`
}

type SessionSummaryResponse struct {
	SessionID uint                `json:"sesionId"`
	Summary   []SessionSummaryRow `json:"resumen"`
}

type SetRow struct {
	SetNumber int       `json:"set_num"`
	Reps      *int      `json:"reps"`
	WeightKg  *float64  `json:"peso_kg"`
	RPE       *float64  `json:"rpe"`
	IsMax     bool      `json:"es_max"`
	CreatedAt time.Time `json:"creado_en"`
}
