package dto

import (
	"github.com/stayhungrygym/backend/internal/models"
)

type TrackEventRequest struct {
	SessionID  string       `json:"sessionId"`
	Type       string       `json:"type"`
	Route      *string      `json:"route"`
	DurationMs *int         `json:"durationMs"`
	UserID     *uint        `json:"userId"`
	Role       *models.Role `json:"rol"`
}

type PageStat struct {
	Path  string `json:"path"`
	Hits  int    `json:"hits"`
	Users int    `json:"users"`
}

type UsageSummaryResponse struct {
	Sessions      int        `json:"sessions"`
	MinutesActive float64    `json:"minutes_active"`
	Pages         []PageStat `json:"pages"`
}
