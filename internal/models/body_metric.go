package models

import (
	"time"
)

// BodyMetric is one body-weight measurement, the source for the weight and
// BMI history endpoints.
type BodyMetric struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_body_metrics_user_date" json:"usuario_id"`
	MeasuredAt time.Time `gorm:"type:date;not null;index:idx_body_metrics_user_date" json:"fecha_medicion"`
	WeightKg   float64   `gorm:"not null" json:"peso_kg"`
}
