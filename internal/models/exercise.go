package models

// Exercise is a catalog entry. MET is the metabolic-equivalent value used
// by the calorie estimator; nil falls back to the resting-multiple default.
type Exercise struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"size:100;not null;index" json:"nombre"`
	MuscleGroup string   `gorm:"size:50" json:"grupo_muscular"`
	Difficulty  string   `gorm:"size:20" json:"dificultad"`
	MET         *float64 `gorm:"column:met" json:"met"`
	Active      bool     `gorm:"not null;default:true" json:"activo"`
}
