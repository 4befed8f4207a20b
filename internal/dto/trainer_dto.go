package dto

type ClientRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"nombre"`
	Email    string  `json:"email"`
	Age      int     `json:"edad"`
	WeightKg float64 `json:"peso"`
	HeightM  float64 `json:"estatura"`
}

type AssignClientRequest struct {
	TrainerID uint `json:"entrenadorId"`
	ClientID  uint `json:"clienteId"`
}
