package models

import (
	"time"
)

// Announcement defines the admin announcement model
type Announcement struct {
	ID             int64      `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Message        string     `json:"message" db:"message"`
	TargetAudience string     `json:"target_audience" db:"target_audience"`
	Priority       string     `json:"priority" db:"priority"`
	IsBanner       bool       `json:"is_banner" db:"is_banner"`
	CreatedBy      int64      `json:"created_by" db:"created_by"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}
