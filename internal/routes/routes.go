package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/stayhungrygym/backend/internal/config"
	"github.com/stayhungrygym/backend/internal/handlers"
	"github.com/stayhungrygym/backend/internal/middleware"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	calorieHandler *handlers.CalorieHandler,
	progressHandler *handlers.ProgressHandler,
	sessionHandler *handlers.SessionHandler,
	routineHandler *handlers.RoutineHandler,
	trainerHandler *handlers.TrainerHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	exerciseHandler *handlers.ExerciseHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	jwtRequired := middleware.JWTProtected(cfg)
	loadUser := middleware.LoadUser(db)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// Profile (JWT required)
	api.Get("/auth/profile", jwtRequired, loadUser, authHandler.GetProfile)
	api.Put("/auth/profile", jwtRequired, loadUser, authHandler.UpdateProfile)

	// Admin user management
	users := api.Group("/auth/users", jwtRequired, loadUser, adminOnly)
	users.Get("/", authHandler.ListUsers)
	users.Put("/:id", authHandler.UpdateUser)
	users.Put("/:id/status", authHandler.SetUserStatus)

	// Reports (admin)
	reports := api.Group("/reports", jwtRequired, loadUser, adminOnly)
	reports.Get("/users/churn", reportHandler.UsersChurn)
	reports.Get("/adherence", reportHandler.Adherence)
	reports.Get("/volume", reportHandler.TrainingVolume)
	reports.Get("/prs", reportHandler.PRs)
	reports.Get("/trainers/clients", reportHandler.TrainerClients)

	// Calorie estimates (JWT required)
	calories := api.Group("/calories", jwtRequired, loadUser)
	calories.Get("/by-session", calorieHandler.BySession)
	calories.Get("/by-user-range", calorieHandler.ByRange)

	// Progress
	progress := api.Group("/progress")
	progress.Get("/weight-history", progressHandler.Weight)
	progress.Get("/bmi-history", progressHandler.BMI)
	progress.Get("/strength-prs", progressHandler.StrengthPRs)

	// Trainers
	trainers := api.Group("/trainers")
	trainers.Get("/my-clients", trainerHandler.MyClients)
	trainers.Post("/assign-client", trainerHandler.AssignClient)
	trainers.Get("/search-clients", trainerHandler.SearchClients)

	// Routine templates and assignments
	routines := api.Group("/routines")
	routines.Post("/templates", routineHandler.CreateTemplate)
	routines.Post("/templates/:id/exercises", routineHandler.AddExercises)
	routines.Post("/assign", routineHandler.Assign)

	// Workout sessions
	sessions := api.Group("/sessions")
	sessions.Get("/today", sessionHandler.Today)
	sessions.Post("/:id/exercises/:templateExerciseId/toggle", sessionHandler.ToggleExercise)
	sessions.Post("/:id/sets", sessionHandler.AddSet)
	sessions.Get("/:id/summary", sessionHandler.Summary)
	sessions.Get("/:id/exercises/:templateExerciseId/sets", sessionHandler.Sets)

	// Exercise catalog
	api.Get("/exercises/search", exerciseHandler.Search)

	// Usage analytics: track is public, the summary is admin-only
	api.Post("/analytics/track", analyticsHandler.Track)
	api.Get("/analytics/usage-summary", jwtRequired, loadUser, adminOnly, analyticsHandler.UsageSummary)
}
