package dto

import (
	"encoding/json"
	"strings"

	"github.com/yigit/campussphere/internal/app/models"
)

// SkillsInput accepts the skills_required field either as a JSON array or as
// a single comma-separated string (the dashboards send both).
type SkillsInput models.StringList

// UnmarshalJSON decodes an array as-is and splits a string on commas; anything
// else degrades to an empty list.
func (s *SkillsInput) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = SkillsInput(items)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		parts := []string{}
		for _, p := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		*s = SkillsInput(parts)
		return nil
	}

	*s = SkillsInput{}
	return nil
}

// CreatePostRequest carries a new collaboration post. Pointer fields
// distinguish absent keys from zero values for the required-field check.
type CreatePostRequest struct {
	Title               *string      `json:"title"`
	Description         *string      `json:"description"`
	SkillsRequired      *SkillsInput `json:"skills_required"`
	TeamSizeNeeded      *int         `json:"team_size_needed"`
	RegistrationFormURL *string      `json:"registration_form_url"`
	ProjectCategory     *string      `json:"project_category"`
}

// InterestRequest carries an optional message with an expression of interest
type InterestRequest struct {
	Message string `json:"message"`
}

// CollaborationPostView is an active post with interest aggregates for the
// requesting student
type CollaborationPostView struct {
	models.CollaborationPost
	AuthorName     string `json:"author_name"`
	InterestCount  int    `json:"interest_count"`
	UserInterested bool   `json:"user_interested"`
}

// FeedPostView is a recent active post as shown in the faculty mentorship feed
type FeedPostView struct {
	models.CollaborationPost
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}
