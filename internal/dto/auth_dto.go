package dto

import (
	"github.com/stayhungrygym/backend/internal/models"
)

type RegisterRequest struct {
	Name     string  `json:"nombre"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Age      int     `json:"edad"`
	WeightKg float64 `json:"peso"`
	HeightM  float64 `json:"estatura"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthData struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}

type ProfileResponse struct {
	Success bool `json:"success"`
	Data    struct {
		User models.User `json:"user"`
	} `json:"data"`
}

type UpdateProfileRequest struct {
	Name     *string  `json:"nombre"`
	Age      *int     `json:"edad"`
	WeightKg *float64 `json:"peso"`
	HeightM  *float64 `json:"estatura"`
}

type AdminUpdateUserRequest struct {
	Name     *string      `json:"nombre"`
	Role     *models.Role `json:"rol"`
	Age      *int         `json:"edad"`
	WeightKg *float64     `json:"peso"`
	HeightM  *float64     `json:"estatura"`
}

// SetUserStatusRequest carries 1 to activate, 0 to deactivate.
type SetUserStatusRequest struct {
	Active *int `json:"activo"`
}

type UserListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Users []models.User `json:"users"`
	} `json:"data"`
}
