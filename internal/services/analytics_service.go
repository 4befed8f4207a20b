package services

import (
	"errors"
	"fmt"

	"github.com/stayhungrygym/backend/internal/dto"
	"github.com/stayhungrygym/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingEventFields = errors.New("sessionId and type are required")
	ErrInvalidEventType   = errors.New("invalid event type")
)

const routeMaxLen = 200

// AnalyticsService ingests frontend usage events and builds the admin
// usage summary.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Track stores one usage event. An authenticated identity overrides any
// user/role the client sent.
func (s *AnalyticsService) Track(req *dto.TrackEventRequest, authUserID *uint, authRole *models.Role) error {
	if req.SessionID == "" || req.Type == "" {
		return ErrMissingEventFields
	}
	if !models.ValidEventType(req.Type) {
		return ErrInvalidEventType
	}

	userID := req.UserID
	role := req.Role
	if authUserID != nil {
		userID = authUserID
		role = authRole
	}

	var route *string
	if req.Route != nil && *req.Route != "" {
		r := *req.Route
		if len(r) > routeMaxLen {
			r = r[:routeMaxLen]
		}
		route = &r
	}

	var duration *int
	if req.DurationMs != nil && *req.DurationMs >= 0 {
		duration = req.DurationMs
	}

	event := models.UsageEvent{
		UserID:     userID,
		Role:       role,
		SessionID:  req.SessionID,
		EventType:  req.Type,
		Route:      route,
		DurationMs: duration,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return fmt.Errorf("track event: %w", err)
	}
	return nil
}

// UsageSummary aggregates usage over an explicit date range, or the
// trailing 30 days when no range is given.
func (s *AnalyticsService) UsageSummary(from, to string) (*dto.UsageSummaryResponse, error) {
	where := "created_at >= CURRENT_DATE - 30"
	var params []any
	if from != "" && to != "" {
		where = "created_at::date BETWEEN ? AND ?"
		params = []any{from, to}
	}

	var sessions int
	err := s.db.Raw(
		"SELECT COUNT(DISTINCT session_id) FROM usage_events WHERE "+where, params...).
		Scan(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("usage sessions query: %w", err)
	}

	var totalMs int64
	err = s.db.Raw(
		`SELECT COALESCE(SUM(duration_ms), 0) FROM usage_events
		  WHERE `+where+` AND event_type IN (?, ?, ?)`,
		append(params, models.EventHeartbeat, models.EventBlur, models.EventUnload)...).
		Scan(&totalMs).Error
	if err != nil {
		return nil, fmt.Errorf("usage duration query: %w", err)
	}

	var pages []dto.PageStat
	err = s.db.Raw(
		`SELECT COALESCE(route, '(sin ruta)') AS path,
		        COUNT(*) AS hits,
		        COUNT(DISTINCT user_id) AS users
		   FROM usage_events
		  WHERE `+where+` AND event_type = ?
		  GROUP BY route
		  ORDER BY hits DESC
		  LIMIT 50`,
		append(params, models.EventPageView)...).
		Scan(&pages).Error
	if err != nil {
		return nil, fmt.Errorf("usage pages query: %w", err)
	}

	return &dto.UsageSummaryResponse{
		Sessions:      sessions,
		MinutesActive: round1(float64(totalMs) / 60000),
		Pages:         pages,
	}, nil
}
