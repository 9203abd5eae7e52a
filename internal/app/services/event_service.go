package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/repositories"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
	"github.com/yigit/campussphere/internal/pkg/dberrors"
	"github.com/yigit/campussphere/internal/metrics"
	"github.com/yigit/campussphere/internal/pkg/helpers"
	"github.com/yigit/campussphere/internal/pkg/logger"
)

// EventService handles the event lifecycle: submission, review, registration
// and the role-specific listings.
type EventService struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo repositories.IEventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// SubmitProposal creates a new event. Student submissions enter the approval
// queue; faculty submissions are created approved with the creator stamped as
// reviewer.
func (s *EventService) SubmitProposal(ctx context.Context, principal *models.Principal, req *dto.SubmitEventRequest) (string, error) {
	op := OpSubmitProposal
	if principal != nil && principal.Role == models.RoleFaculty {
		op = OpCreateFacultyEvent
	}
	if err := Authorize(principal, op); err != nil {
		return "", err
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		req.StartDatetime == "" || strings.TrimSpace(req.Category) == "" {
		return "", apperrors.NewValidationError("Missing required fields")
	}

	startDatetime, err := helpers.ParseDateTime(req.StartDatetime)
	if err != nil {
		return "", apperrors.NewValidationError("Invalid datetime format")
	}

	var endDatetime *time.Time
	if req.EndDatetime != nil && *req.EndDatetime != "" {
		parsed, err := helpers.ParseDateTime(*req.EndDatetime)
		if err != nil {
			return "", apperrors.NewValidationError("Invalid datetime format")
		}
		endDatetime = &parsed
	}

	if endDatetime != nil && endDatetime.Before(startDatetime) {
		return "", apperrors.NewValidationError("End datetime cannot be before start datetime")
	}

	event := &models.Event{
		Title:               req.Title,
		Description:         req.Description,
		StartDatetime:       startDatetime,
		EndDatetime:         endDatetime,
		Location:            req.Location,
		Category:            req.Category,
		EligibilityCriteria: req.EligibilityCriteria,
		RegistrationFormURL: req.RegistrationFormURL,
		OrganizerID:         principal.UserID,
		Status:              models.EventPendingApproval,
		MaxParticipants:     req.MaxParticipants,
	}

	message := "Event proposal submitted successfully!"
	if principal.Role == models.RoleFaculty {
		now := time.Now()
		event.Status = models.EventApproved
		event.ReviewedBy = &principal.UserID
		event.ReviewedAt = &now
		message = "Event created successfully!"
	}

	if _, err := s.eventRepo.Create(ctx, event); err != nil {
		return "", fmt.Errorf("error creating event: %w", err)
	}

	logger.Info().
		Int64("event_id", event.ID).
		Int64("organizer_id", principal.UserID).
		Str("status", string(event.Status)).
		Msg("Event submitted")

	return message, nil
}

// ReviewProposal applies a review decision to a pending proposal. The
// decision is a single guarded update, so two concurrent reviewers cannot
// both succeed.
func (s *EventService) ReviewProposal(ctx context.Context, principal *models.Principal, proposalID int64, req *dto.ProposalActionRequest) (string, error) {
	if err := Authorize(principal, OpReviewProposal); err != nil {
		return "", err
	}

	// The proposal must exist and still be pending before the action is even
	// looked at; anything else is reported as not-found-or-processed.
	pending, err := s.eventRepo.IsPendingProposal(ctx, proposalID)
	if err != nil {
		return "", fmt.Errorf("error checking proposal: %w", err)
	}
	if !pending {
		return "", apperrors.ErrProposalNotPending
	}

	if req.Action == "" {
		return "", apperrors.NewValidationError("Action is required")
	}

	var status models.EventStatus
	var message string
	notes := req.Notes

	switch req.Action {
	case "approve":
		status = models.EventApproved
		message = "Proposal approved successfully"
	case "deny":
		status = models.EventDenied
		message = "Proposal denied"
	case "changes":
		status = models.EventRevisionRequested
		message = "Changes requested - student has been notified"
		if req.MeetingLocation != "" {
			notes += fmt.Sprintf(" Meeting location: %s", req.MeetingLocation)
		}
	default:
		return "", apperrors.NewValidationError("Invalid action")
	}

	updated, err := s.eventRepo.Review(ctx, proposalID, status, principal.UserID, notes)
	if err != nil {
		return "", fmt.Errorf("error reviewing proposal: %w", err)
	}
	if !updated {
		return "", apperrors.ErrProposalNotPending
	}

	logger.Info().
		Int64("proposal_id", proposalID).
		Int64("reviewer_id", principal.UserID).
		Str("action", req.Action).
		Msg("Proposal reviewed")

	metrics.ObserveReview(req.Action)
	return message, nil
}

// RegisterForEvent registers the student for an approved event, enforcing the
// duplicate and capacity gates. The unique constraint on (user_id, event_id)
// catches the race the pre-checks cannot.
func (s *EventService) RegisterForEvent(ctx context.Context, principal *models.Principal, eventID int64) error {
	if err := Authorize(principal, OpRegisterForEvent); err != nil {
		return err
	}

	event, err := s.eventRepo.GetApprovedByID(ctx, eventID)
	if err != nil {
		return err
	}

	registered, err := s.eventRepo.IsRegistered(ctx, principal.UserID, eventID)
	if err != nil {
		return fmt.Errorf("error checking registration: %w", err)
	}
	if registered {
		return apperrors.ErrAlreadyRegistered
	}

	if event.MaxParticipants != nil {
		count, err := s.eventRepo.CountRegistrations(ctx, eventID)
		if err != nil {
			return fmt.Errorf("error counting registrations: %w", err)
		}
		if count >= *event.MaxParticipants {
			return apperrors.ErrEventFull
		}
	}

	if err := s.eventRepo.CreateRegistration(ctx, principal.UserID, eventID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	logger.Info().
		Int64("event_id", eventID).
		Int64("user_id", principal.UserID).
		Msg("Event registration created")

	metrics.ObserveRegistration()
	return nil
}

// ListStudentEvents returns all approved events with the student's own
// registration state
func (s *EventService) ListStudentEvents(ctx context.Context, principal *models.Principal) ([]dto.StudentEventView, error) {
	if err := Authorize(principal, OpViewStudentEvents); err != nil {
		return nil, err
	}

	return s.eventRepo.ListApprovedForStudent(ctx, principal.UserID)
}

// ListOrganizedEvents returns the student's own submissions in every state
func (s *EventService) ListOrganizedEvents(ctx context.Context, principal *models.Principal) ([]dto.OrganizedEventView, error) {
	if err := Authorize(principal, OpViewOrganizedEvents); err != nil {
		return nil, err
	}

	return s.eventRepo.ListOrganizedBy(ctx, principal.UserID)
}

// ListFacultyEvents returns events the faculty member organized or reviewed
func (s *EventService) ListFacultyEvents(ctx context.Context, principal *models.Principal) ([]dto.FacultyEventView, error) {
	if err := Authorize(principal, OpViewFacultyEvents); err != nil {
		return nil, err
	}

	return s.eventRepo.ListByOrganizerOrReviewer(ctx, principal.UserID)
}

// ListProposals returns the pending approval queue
func (s *EventService) ListProposals(ctx context.Context, principal *models.Principal) ([]dto.ProposalView, error) {
	if err := Authorize(principal, OpViewProposals); err != nil {
		return nil, err
	}

	return s.eventRepo.ListPendingProposals(ctx)
}
