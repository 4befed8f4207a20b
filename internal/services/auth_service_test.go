package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/stayhungrygym/backend/internal/config"
	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	svc := NewAuthService(nil, cfg)

	user := &models.User{ID: 42, Name: "Ana Torres", Role: models.RoleTrainer}
	signed, err := svc.GenerateToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		require.Equal(t, jwt.SigningMethodHS256, token.Method)
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, "42", claims["sub"])
	require.Equal(t, "Entrenador", claims["rol"])
	require.Equal(t, "Ana Torres", claims["nombre"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestGenerateTokenRejectedWithWrongSecret(t *testing.T) {
	svc := NewAuthService(nil, &config.Config{JWTSecret: "right", JWTExpiry: time.Hour})

	signed, err := svc.GenerateToken(&models.User{ID: 1, Role: models.RoleClient})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	require.Error(t, err)
}

func TestValidateRegistration(t *testing.T) {
	valid := dto.RegisterRequest{
		Name:     "Luis Gomez",
		Email:    "luis@example.com",
		Password: "secret123",
		Age:      28,
		WeightKg: 80,
		HeightM:  1.78,
	}
	require.NoError(t, validateRegistration(&valid))

	cases := []struct {
		name   string
		mutate func(r *dto.RegisterRequest)
	}{
		{"short name", func(r *dto.RegisterRequest) { r.Name = "L" }},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "abc" }},
		{"too young", func(r *dto.RegisterRequest) { r.Age = 12 }},
		{"weight out of range", func(r *dto.RegisterRequest) { r.WeightKg = 20 }},
		{"height out of range", func(r *dto.RegisterRequest) { r.HeightM = 3.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := validateRegistration(&req)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestRoleValidation(t *testing.T) {
	require.True(t, models.RoleClient.Valid())
	require.True(t, models.RoleTrainer.Valid())
	require.True(t, models.RoleAdmin.Valid())
	require.False(t, models.Role("Gerente").Valid())

	require.True(t, models.RoleTrainer.OneOf(models.RoleTrainer, models.RoleAdmin))
	require.False(t, models.RoleClient.OneOf(models.RoleTrainer, models.RoleAdmin))
}
