package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/repositories"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
	"github.com/yigit/campussphere/internal/pkg/dberrors"
	"github.com/yigit/campussphere/internal/pkg/logger"
)

// CollaborationService handles the peer collaboration board
type CollaborationService struct {
	collaborationRepo repositories.ICollaborationRepository
}

// NewCollaborationService creates a new collaboration service instance
func NewCollaborationService(collaborationRepo repositories.ICollaborationRepository) *CollaborationService {
	return &CollaborationService{
		collaborationRepo: collaborationRepo,
	}
}

// ListPosts returns all active posts with interest aggregates for the viewer
func (s *CollaborationService) ListPosts(ctx context.Context, principal *models.Principal) ([]dto.CollaborationPostView, error) {
	if err := Authorize(principal, OpViewCollaborations); err != nil {
		return nil, err
	}

	return s.collaborationRepo.ListActive(ctx, principal.UserID)
}

// CreatePost creates a new collaboration post
func (s *CollaborationService) CreatePost(ctx context.Context, principal *models.Principal, req *dto.CreatePostRequest) error {
	if err := Authorize(principal, OpCreateCollaboration); err != nil {
		return err
	}

	if req.Title == nil || req.Description == nil || req.SkillsRequired == nil || req.TeamSizeNeeded == nil {
		return apperrors.NewValidationError("Missing required fields")
	}
	if strings.TrimSpace(*req.Title) == "" || strings.TrimSpace(*req.Description) == "" {
		return apperrors.NewValidationError("Missing required fields")
	}

	post := &models.CollaborationPost{
		AuthorID:            principal.UserID,
		Title:               *req.Title,
		Description:         *req.Description,
		SkillsRequired:      models.StringList(*req.SkillsRequired),
		TeamSizeNeeded:      *req.TeamSizeNeeded,
		RegistrationFormURL: req.RegistrationFormURL,
		ProjectCategory:     req.ProjectCategory,
		Status:              models.PostActive,
	}

	if _, err := s.collaborationRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("error creating post: %w", err)
	}

	logger.Info().
		Int64("post_id", post.ID).
		Int64("author_id", principal.UserID).
		Msg("Collaboration post created")

	return nil
}

// ExpressInterest records the student's interest in an active post. Authors
// cannot declare interest in their own posts, and a student may declare
// interest in a post at most once.
func (s *CollaborationService) ExpressInterest(ctx context.Context, principal *models.Principal, postID int64, message string) error {
	if err := Authorize(principal, OpExpressInterest); err != nil {
		return err
	}

	post, err := s.collaborationRepo.GetActiveByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID == principal.UserID {
		return apperrors.ErrSelfInterestForbidden
	}

	declared, err := s.collaborationRepo.HasInterest(ctx, postID, principal.UserID)
	if err != nil {
		return fmt.Errorf("error checking interest: %w", err)
	}
	if declared {
		return apperrors.ErrInterestAlreadyDeclared
	}

	if err := s.collaborationRepo.CreateInterest(ctx, postID, principal.UserID, message); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrInterestAlreadyDeclared
		}
		return fmt.Errorf("error creating interest: %w", err)
	}

	logger.Info().
		Int64("post_id", postID).
		Int64("user_id", principal.UserID).
		Msg("Collaboration interest expressed")

	return nil
}
