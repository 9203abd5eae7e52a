package services

import (
	"context"
	"fmt"

	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/repositories"
)

// collaborationFeedLimit caps the recent posts shown on the mentorship page
const collaborationFeedLimit = 10

// MentorshipService assembles the faculty mentorship dashboard
type MentorshipService struct {
	mentorshipRepo    repositories.IMentorshipRepository
	collaborationRepo repositories.ICollaborationRepository
}

// NewMentorshipService creates a new mentorship service instance
func NewMentorshipService(mentorshipRepo repositories.IMentorshipRepository, collaborationRepo repositories.ICollaborationRepository) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo:    mentorshipRepo,
		collaborationRepo: collaborationRepo,
	}
}

// GetMentorshipInfo returns the faculty member's active mentees plus a feed
// of recent collaboration posts
func (s *MentorshipService) GetMentorshipInfo(ctx context.Context, principal *models.Principal) (*dto.MentorshipInfoResponse, error) {
	if err := Authorize(principal, OpViewMentorship); err != nil {
		return nil, err
	}

	mentees, err := s.mentorshipRepo.ListActiveMentees(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentees: %w", err)
	}

	feed, err := s.collaborationRepo.ListRecentActive(ctx, collaborationFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving collaboration feed: %w", err)
	}

	return &dto.MentorshipInfoResponse{
		ActiveMentees:     mentees,
		CollaborationFeed: feed,
	}, nil
}
