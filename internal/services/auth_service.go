package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stayhungrygym/backend/internal/config"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDeactivation   = errors.New("cannot deactivate your own account")
	ErrNoChanges          = errors.New("nothing to update")
	ErrInvalidRole        = errors.New("invalid role")
)

// ValidationError carries a user-facing message for a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a client account. Registration always yields the client
// role; trainers and administrators are promoted by an admin afterwards.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthData, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	var existing models.User
	err := s.db.Where("email = ? AND active", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		Age:      req.Age,
		WeightKg: req.WeightKg,
		HeightM:  req.HeightM,
		Role:     models.RoleClient,
		Active:   true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthData{User: user, Token: token}, nil
}

// Login exchanges credentials for a bearer token. Deactivated accounts are
// rejected even with a valid password.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthData, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrAccountInactive
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthData{User: user, Token: token}, nil
}

// GenerateToken mints an HS256 bearer token for the user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":    strconv.FormatUint(uint64(user.ID), 10),
		"rol":    string(user.Role),
		"nombre": user.Name,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// Profile returns the active user with the given id.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND active", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies the provided fields to the acting user's own account.
func (s *AuthService) UpdateProfile(userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 || len(name) > 100 {
			return nil, validationErr("name must be between 2 and 100 characters")
		}
		updates["name"] = name
	}
	if req.Age != nil {
		if *req.Age < 16 || *req.Age > 100 {
			return nil, validationErr("age must be between 16 and 100")
		}
		updates["age"] = *req.Age
	}
	if req.WeightKg != nil {
		if *req.WeightKg < 30 || *req.WeightKg > 300 {
			return nil, validationErr("weight must be between 30 and 300 kg")
		}
		updates["weight_kg"] = *req.WeightKg
	}
	if req.HeightM != nil {
		if *req.HeightM < 1.0 || *req.HeightM > 2.5 {
			return nil, validationErr("height must be between 1.0 and 2.5 meters")
		}
		updates["height_m"] = *req.HeightM
	}
	if len(updates) == 0 {
		return nil, ErrNoChanges
	}

	res := s.db.Model(&models.User{}).Where("id = ? AND active", userID).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("profile update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return s.Profile(userID)
}

// ListUsers lists accounts for the admin panel. include filters by active
// state: "all", "active" or "inactive".
func (s *AuthService) ListUsers(include string) ([]models.User, error) {
	q := s.db.Order("id DESC")
	switch strings.ToLower(include) {
	case "active":
		q = q.Where("active")
	case "inactive":
		q = q.Where("NOT active")
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("user list query: %w", err)
	}
	return users, nil
}

// AdminUpdateUser applies any combination of name/role/age/weight/height.
func (s *AuthService) AdminUpdateUser(userID uint, req *dto.AdminUpdateUserRequest) (*models.User, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		updates["role"] = *req.Role
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.WeightKg != nil {
		updates["weight_kg"] = *req.WeightKg
	}
	if req.HeightM != nil {
		updates["height_m"] = *req.HeightM
	}
	if len(updates) == 0 {
		return nil, ErrNoChanges
	}

	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("admin user update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("admin user reload: %w", err)
	}
	return &user, nil
}

// SetUserStatus activates or deactivates an account. Deactivation stamps
// DeactivatedAt; reactivation clears it. Admins cannot deactivate their own
// account.
func (s *AuthService) SetUserStatus(userID uint, active bool, actingID uint) error {
	if !active && userID == actingID {
		return ErrSelfDeactivation
	}

	updates := map[string]any{"active": active}
	if active {
		updates["deactivated_at"] = nil
	} else {
		now := time.Now()
		updates["deactivated_at"] = &now
	}

	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("status update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func validateRegistration(req *dto.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 100 {
		return validationErr("name must be between 2 and 100 characters")
	}
	email := strings.TrimSpace(req.Email)
	if !strings.Contains(email, "@") || len(email) < 5 {
		return validationErr("a valid email is required")
	}
	if len(req.Password) < 6 {
		return validationErr("password must be at least 6 characters")
	}
	if req.Age < 16 || req.Age > 100 {
		return validationErr("age must be between 16 and 100")
	}
	if req.WeightKg < 30 || req.WeightKg > 300 {
		return validationErr("weight must be between 30 and 300 kg")
	}
	if req.HeightM < 1.0 || req.HeightM > 2.5 {
		return validationErr("height must be between 1.0 and 2.5 meters")
	}
	return nil
}
