package models

import (
	"time"
)

// MentorshipStatus defines the mentorship relationship states
type MentorshipStatus string

const (
	MentorshipActive MentorshipStatus = "active"
	MentorshipEnded  MentorshipStatus = "ended"
)

// MentorshipRelationship pairs a faculty mentor with a student mentee
type MentorshipRelationship struct {
	ID        int64            `json:"id" db:"id"`
	MentorID  int64            `json:"mentor_id" db:"mentor_id"`
	MenteeID  int64            `json:"mentee_id" db:"mentee_id"`
	Status    MentorshipStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}
