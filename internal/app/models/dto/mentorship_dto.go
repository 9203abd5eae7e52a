package dto

import (
	"github.com/yigit/campussphere/internal/app/models"
)

// MenteeView is an active mentorship relationship with mentee details
type MenteeView struct {
	models.MentorshipRelationship
	MenteeName     string  `json:"mentee_name"`
	MenteeEmail    string  `json:"mentee_email"`
	DepartmentName *string `json:"department_name"`
}

// MentorshipInfoResponse is the faculty mentorship dashboard payload
type MentorshipInfoResponse struct {
	ActiveMentees     []MenteeView   `json:"active_mentees"`
	CollaborationFeed []FeedPostView `json:"collaboration_feed"`
}
