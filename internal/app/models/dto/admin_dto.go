package dto

import (
	"github.com/yigit/campussphere/internal/app/models"
)

// UserActionRequest carries an admin decision on a user account
type UserActionRequest struct {
	Action string `json:"action"` // approve, deny, remove
}

// AdminUserView is a user row with department name, hash stripped
type AdminUserView struct {
	models.User
}

// CreateAnnouncementRequest carries a new announcement
type CreateAnnouncementRequest struct {
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	TargetAudience string  `json:"target_audience"`
	Priority       string  `json:"priority"`
	IsBanner       bool    `json:"is_banner"`
	ExpiresAt      *string `json:"expires_at"`
}

// AnnouncementView is an announcement with its author's name
type AnnouncementView struct {
	models.Announcement
	CreatedByName string `json:"created_by_name"`
}

// RoleStatusCount is one row of the user statistics aggregate
type RoleStatusCount struct {
	Role   string `json:"role"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// CategoryStatusCount is one row of the event statistics aggregate
type CategoryStatusCount struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Count    int    `json:"count"`
}

// MonthlyRegistrations is one month of registration volume
type MonthlyRegistrations struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
}

// DepartmentEngagement is one row of the per-department engagement aggregate
type DepartmentEngagement struct {
	Department         string `json:"department"`
	TotalUsers         int    `json:"total_users"`
	EventsOrganized    int    `json:"events_organized"`
	TotalRegistrations int    `json:"total_registrations"`
}

// AnalyticsResponse is the admin analytics payload
type AnalyticsResponse struct {
	UserStats            []RoleStatusCount      `json:"user_stats"`
	EventStats           []CategoryStatusCount  `json:"event_stats"`
	MonthlyParticipation []MonthlyRegistrations `json:"monthly_participation"`
	DepartmentStats      []DepartmentEngagement `json:"department_stats"`
}
