package models

// TrainerClient links a trainer to one of their clients. Re-assignment is
// an upsert on the (trainer, client) pair that reactivates the link.
type TrainerClient struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TrainerID uint `gorm:"not null;uniqueIndex:idx_trainer_client" json:"entrenador_id"`
	ClientID  uint `gorm:"not null;uniqueIndex:idx_trainer_client" json:"cliente_id"`
	Active    bool `gorm:"not null;default:true" json:"activo"`
}
