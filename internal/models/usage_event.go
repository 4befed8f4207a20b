package models

import (
	"time"
)

// Usage event kinds accepted by the analytics ingestion endpoint.
const (
	EventPageView  = "page_view"
	EventFocus     = "focus"
	EventBlur      = "blur"
	EventHeartbeat = "heartbeat"
	EventUnload    = "unload"
	EventAction    = "action"
)

// ValidEventType reports whether t is one of the accepted event kinds.
func ValidEventType(t string) bool {
	switch t {
	case EventPageView, EventFocus, EventBlur, EventHeartbeat, EventUnload, EventAction:
		return true
	}
	return false
}

// UsageEvent is a frontend telemetry event. SessionID is the browser tab
// session, not a workout session; UserID/Role are nil for anonymous events.
type UsageEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index:idx_usage_user_created" json:"user_id"`
	Role       *Role     `gorm:"size:20;index" json:"rol"`
	SessionID  string    `gorm:"size:64;not null" json:"session_id"`
	EventType  string    `gorm:"size:20;not null;index" json:"event_type"`
	Route      *string   `gorm:"size:200;index" json:"route"`
	DurationMs *int      `json:"duration_ms"`
	CreatedAt  time.Time `gorm:"index:idx_usage_user_created" json:"created_at"`
}
