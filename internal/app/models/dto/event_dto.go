package dto

import (
	"time"

	"github.com/yigit/campussphere/internal/app/models"
)

// SubmitEventRequest carries a new event or event proposal
type SubmitEventRequest struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	StartDatetime       string  `json:"start_datetime"`
	EndDatetime         *string `json:"end_datetime"`
	Location            *string `json:"location"`
	Category            string  `json:"category"`
	EligibilityCriteria *string `json:"eligibility_criteria"`
	RegistrationFormURL *string `json:"registration_form_url"`
	MaxParticipants     *int    `json:"max_participants"`
}

// ProposalActionRequest carries a review decision for a pending proposal
type ProposalActionRequest struct {
	Action          string `json:"action"` // approve, deny, changes
	Notes           string `json:"notes"`
	MeetingLocation string `json:"meeting_location"`
}

// FeatureEventRequest toggles the homepage featured flag
type FeatureEventRequest struct {
	Featured *bool `json:"featured"`
}

// StudentEventView is an approved event as shown on the student dashboard
type StudentEventView struct {
	models.Event
	OrganizerName       string     `json:"organizer_name"`
	OrganizerDepartment *string    `json:"organizer_department"`
	RegistrationStatus  *string    `json:"registration_status"`
	RegisteredAt        *time.Time `json:"registered_at"`
	ParticipantCount    int        `json:"participant_count"`
}

// OrganizedEventView is an event as shown to its student organizer
type OrganizedEventView struct {
	models.Event
	ReviewedByName    *string `json:"reviewed_by_name"`
	RegistrationCount int     `json:"registration_count"`
}

// FacultyEventView is an event organized or reviewed by a faculty member
type FacultyEventView struct {
	models.Event
	OrganizerName    *string `json:"organizer_name"`
	ParticipantCount int     `json:"participant_count"`
}

// ProposalView is a pending student proposal awaiting review
type ProposalView struct {
	models.Event
	StudentName    string  `json:"student_name"`
	StudentEmail   string  `json:"student_email"`
	DepartmentName *string `json:"department_name"`
}

// AdminEventView is an event as shown on the admin dashboard
type AdminEventView struct {
	models.Event
	OrganizerName       string  `json:"organizer_name"`
	OrganizerRole       string  `json:"organizer_role"`
	OrganizerDepartment *string `json:"organizer_department"`
	ParticipantCount    int     `json:"participant_count"`
}
