package models

import (
	"time"
)

// CollaborationPostStatus defines the lifecycle of a collaboration post
type CollaborationPostStatus string

const (
	PostActive CollaborationPostStatus = "active"
	PostClosed CollaborationPostStatus = "closed"
)

// CollaborationPost defines the collaboration post model
type CollaborationPost struct {
	ID                  int64                   `json:"id" db:"id"`
	AuthorID            int64                   `json:"author_id" db:"author_id"`
	Title               string                  `json:"title" db:"title"`
	Description         string                  `json:"description" db:"description"`
	SkillsRequired      StringList              `json:"skills_required" db:"skills_required"`
	TeamSizeNeeded      int                     `json:"team_size_needed" db:"team_size_needed"`
	RegistrationFormURL *string                 `json:"registration_form_url,omitempty" db:"registration_form_url"`
	ProjectCategory     *string                 `json:"project_category,omitempty" db:"project_category"`
	Status              CollaborationPostStatus `json:"status" db:"status"`
	CreatedAt           time.Time               `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at" db:"updated_at"`
}

// CollaborationInterest defines the (post, user) interest pair, unique per pair.
// A user may not express interest in their own post.
type CollaborationInterest struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
