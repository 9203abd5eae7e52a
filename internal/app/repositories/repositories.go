package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	DepartmentRepository    *DepartmentRepository
	EventRepository         *EventRepository
	CollaborationRepository *CollaborationRepository
	MentorshipRepository    *MentorshipRepository
	AnnouncementRepository  *AnnouncementRepository
	SettingsRepository      *SettingsRepository
	AnalyticsRepository     *AnalyticsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		DepartmentRepository:    NewDepartmentRepository(db),
		EventRepository:         NewEventRepository(db),
		CollaborationRepository: NewCollaborationRepository(db),
		MentorshipRepository:    NewMentorshipRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
		SettingsRepository:      NewSettingsRepository(db),
		AnalyticsRepository:     NewAnalyticsRepository(db),
	}
}
