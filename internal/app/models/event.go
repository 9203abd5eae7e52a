package models

import (
	"time"
)

// EventStatus defines the event lifecycle states
type EventStatus string

const (
	EventPendingApproval   EventStatus = "pending_approval"
	EventApproved          EventStatus = "approved"
	EventDenied            EventStatus = "denied"
	EventRevisionRequested EventStatus = "revision_requested"
)

// Event defines the event model based on the 'events' table.
//
// Lifecycle: pending_approval -> approved | denied | revision_requested.
// Faculty-created events skip the pending state (reviewer = creator).
// All three outcomes are terminal; there is no resubmission path.
type Event struct {
	ID                  int64       `json:"id" db:"id"`
	Title               string      `json:"title" db:"title"`
	Description         string      `json:"description" db:"description"`
	StartDatetime       time.Time   `json:"start_datetime" db:"start_datetime"`
	EndDatetime         *time.Time  `json:"end_datetime,omitempty" db:"end_datetime"`
	Location            *string     `json:"location,omitempty" db:"location"`
	Category            string      `json:"category" db:"category"`
	EligibilityCriteria *string     `json:"eligibility_criteria,omitempty" db:"eligibility_criteria"`
	RegistrationFormURL *string     `json:"registration_form_url,omitempty" db:"registration_form_url"`
	OrganizerID         int64       `json:"organizer_id" db:"organizer_id"`
	Status              EventStatus `json:"status" db:"status"`
	ReviewedBy          *int64      `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt          *time.Time  `json:"reviewed_at,omitempty" db:"reviewed_at"`
	AdminNotes          *string     `json:"admin_notes,omitempty" db:"admin_notes"`
	MaxParticipants     *int        `json:"max_participants,omitempty" db:"max_participants"`
	IsFeatured          bool        `json:"is_featured" db:"is_featured"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" db:"updated_at"`
}

// EventRegistration defines the (user, event) registration pair, unique per pair
type EventRegistration struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	EventID      int64     `json:"event_id" db:"event_id"`
	Status       string    `json:"status" db:"status"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}
