package models

import (
	"time"
)

// Role is the closed set of account roles. The stored values match the
// enum the existing frontend already speaks, so they stay Spanish on the wire.
type Role string

const (
	RoleClient  Role = "Cliente"
	RoleTrainer Role = "Entrenador"
	RoleAdmin   Role = "Administrador"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}

// OneOf reports whether r is in the given allow-list.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// User is a gym member, trainer or administrator. Accounts are soft-deleted:
// Active flips to false and DeactivatedAt is stamped, the row is never removed.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:100;not null" json:"nombre"`
	Email         string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	Age           int        `gorm:"not null" json:"edad"`
	WeightKg      float64    `gorm:"not null" json:"peso"`
	HeightM       float64    `gorm:"not null" json:"estatura"`
	Role          Role       `gorm:"size:20;not null;default:'Cliente';index" json:"rol"`
	Active        bool       `gorm:"not null;default:true" json:"activo"`
	RegisteredAt  time.Time  `gorm:"autoCreateTime;index" json:"fecha_registro"`
	UpdatedAt     time.Time  `json:"fecha_actualizacion"`
	DeactivatedAt *time.Time `gorm:"index" json:"fecha_baja"`
}
