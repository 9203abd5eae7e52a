package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
)

func TestSubmitProposal_MissingFields(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	_, err := service.SubmitProposal(context.Background(), studentPrincipal(), &dto.SubmitEventRequest{
		Title:       "Hackathon",
		Description: "",
		Category:    "technical",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Create")
}

func TestSubmitProposal_InvalidDatetime(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	_, err := service.SubmitProposal(context.Background(), studentPrincipal(), &dto.SubmitEventRequest{
		Title:         "Hackathon",
		Description:   "24h coding event",
		StartDatetime: "next tuesday",
		Category:      "technical",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Invalid datetime format")
}

func TestSubmitProposal_EndBeforeStart(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	end := "2026-01-01T08:00:00Z"
	_, err := service.SubmitProposal(context.Background(), studentPrincipal(), &dto.SubmitEventRequest{
		Title:         "Hackathon",
		Description:   "24h coding event",
		StartDatetime: "2026-01-01T10:00:00Z",
		EndDatetime:   &end,
		Category:      "technical",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "End datetime cannot be before start datetime")
	repo.AssertNotCalled(t, "Create")
}

func TestSubmitProposal_StudentEntersPendingQueue(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.Status == models.EventPendingApproval && e.ReviewedBy == nil && e.OrganizerID == 11
	})).Return(int64(1), nil)

	message, err := service.SubmitProposal(context.Background(), studentPrincipal(), &dto.SubmitEventRequest{
		Title:         "Hackathon",
		Description:   "24h coding event",
		StartDatetime: "2026-10-01T09:00:00Z",
		Category:      "technical",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Event proposal submitted successfully!", message)
	repo.AssertExpectations(t)
}

func TestSubmitProposal_FacultyAutoApproved(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	principal := facultyPrincipal()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.Status == models.EventApproved &&
			e.ReviewedBy != nil && *e.ReviewedBy == principal.UserID &&
			e.ReviewedAt != nil
	})).Return(int64(2), nil)

	message, err := service.SubmitProposal(context.Background(), principal, &dto.SubmitEventRequest{
		Title:         "Guest Lecture",
		Description:   "Distributed systems talk",
		StartDatetime: "2026-11-05T14:00:00Z",
		Category:      "academic",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Event created successfully!", message)
	repo.AssertExpectations(t)
}

func TestSubmitProposal_AdminDenied(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	_, err := service.SubmitProposal(context.Background(), adminPrincipal(), &dto.SubmitEventRequest{
		Title:         "Town Hall",
		Description:   "Campus wide meeting",
		StartDatetime: "2026-11-05T14:00:00Z",
		Category:      "general",
	})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestReviewProposal_Approve(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	principal := facultyPrincipal()
	repo.On("IsPendingProposal", mock.Anything, int64(7)).Return(true, nil)
	repo.On("Review", mock.Anything, int64(7), models.EventApproved, principal.UserID, "looks good").
		Return(true, nil)

	message, err := service.ReviewProposal(context.Background(), principal, 7, &dto.ProposalActionRequest{
		Action: "approve",
		Notes:  "looks good",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Proposal approved successfully", message)
	repo.AssertExpectations(t)
}

func TestReviewProposal_ChangesAppendsMeetingLocation(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	principal := facultyPrincipal()
	repo.On("IsPendingProposal", mock.Anything, int64(7)).Return(true, nil)
	repo.On("Review", mock.Anything, int64(7), models.EventRevisionRequested, principal.UserID,
		"needs a budget Meeting location: Room 204").Return(true, nil)

	message, err := service.ReviewProposal(context.Background(), principal, 7, &dto.ProposalActionRequest{
		Action:          "changes",
		Notes:           "needs a budget",
		MeetingLocation: "Room 204",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Changes requested - student has been notified", message)
	repo.AssertExpectations(t)
}

func TestReviewProposal_InvalidAction(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("IsPendingProposal", mock.Anything, int64(7)).Return(true, nil)

	_, err := service.ReviewProposal(context.Background(), facultyPrincipal(), 7, &dto.ProposalActionRequest{
		Action: "postpone",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Review")
}

func TestReviewProposal_MissingAction(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("IsPendingProposal", mock.Anything, int64(7)).Return(true, nil)

	_, err := service.ReviewProposal(context.Background(), facultyPrincipal(), 7, &dto.ProposalActionRequest{})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Action is required")
	repo.AssertNotCalled(t, "Review")
}

func TestReviewProposal_NonPendingBeatsActionValidation(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("IsPendingProposal", mock.Anything, int64(7)).Return(false, nil)

	_, err := service.ReviewProposal(context.Background(), facultyPrincipal(), 7, &dto.ProposalActionRequest{
		Action: "postpone",
	})

	assert.ErrorIs(t, err, apperrors.ErrProposalNotPending)
	repo.AssertNotCalled(t, "Review")
}

func TestReviewProposal_AlreadyProcessed(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	principal := facultyPrincipal()
	repo.On("IsPendingProposal", mock.Anything, int64(7)).Return(true, nil)
	repo.On("Review", mock.Anything, int64(7), models.EventDenied, principal.UserID, "").
		Return(false, nil)

	_, err := service.ReviewProposal(context.Background(), principal, 7, &dto.ProposalActionRequest{
		Action: "deny",
	})

	assert.ErrorIs(t, err, apperrors.ErrProposalNotPending)
}

func TestReviewProposal_StudentDenied(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	_, err := service.ReviewProposal(context.Background(), studentPrincipal(), 7, &dto.ProposalActionRequest{
		Action: "approve",
	})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "Review")
}

func TestRegisterForEvent_Success(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	max := 100
	repo.On("GetApprovedByID", mock.Anything, int64(5)).
		Return(&models.Event{ID: 5, Status: models.EventApproved, MaxParticipants: &max}, nil)
	repo.On("IsRegistered", mock.Anything, int64(11), int64(5)).Return(false, nil)
	repo.On("CountRegistrations", mock.Anything, int64(5)).Return(40, nil)
	repo.On("CreateRegistration", mock.Anything, int64(11), int64(5)).Return(nil)

	err := service.RegisterForEvent(context.Background(), studentPrincipal(), 5)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRegisterForEvent_NotApproved(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("GetApprovedByID", mock.Anything, int64(5)).
		Return(nil, apperrors.ErrEventNotFound)

	err := service.RegisterForEvent(context.Background(), studentPrincipal(), 5)

	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	repo.AssertNotCalled(t, "CreateRegistration")
}

func TestRegisterForEvent_AlreadyRegistered(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("GetApprovedByID", mock.Anything, int64(5)).
		Return(&models.Event{ID: 5, Status: models.EventApproved}, nil)
	repo.On("IsRegistered", mock.Anything, int64(11), int64(5)).Return(true, nil)

	err := service.RegisterForEvent(context.Background(), studentPrincipal(), 5)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	repo.AssertNotCalled(t, "CreateRegistration")
}

func TestRegisterForEvent_Full(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	max := 50
	repo.On("GetApprovedByID", mock.Anything, int64(5)).
		Return(&models.Event{ID: 5, Status: models.EventApproved, MaxParticipants: &max}, nil)
	repo.On("IsRegistered", mock.Anything, int64(11), int64(5)).Return(false, nil)
	repo.On("CountRegistrations", mock.Anything, int64(5)).Return(50, nil)

	err := service.RegisterForEvent(context.Background(), studentPrincipal(), 5)

	assert.ErrorIs(t, err, apperrors.ErrEventFull)
	repo.AssertNotCalled(t, "CreateRegistration")
}

func TestRegisterForEvent_UnlimitedCapacitySkipsCount(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	repo.On("GetApprovedByID", mock.Anything, int64(5)).
		Return(&models.Event{ID: 5, Status: models.EventApproved}, nil)
	repo.On("IsRegistered", mock.Anything, int64(11), int64(5)).Return(false, nil)
	repo.On("CreateRegistration", mock.Anything, int64(11), int64(5)).Return(nil)

	err := service.RegisterForEvent(context.Background(), studentPrincipal(), 5)

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "CountRegistrations")
}

func TestRegisterForEvent_FacultyDenied(t *testing.T) {
	repo := new(mockEventRepository)
	service := NewEventService(repo)

	err := service.RegisterForEvent(context.Background(), facultyPrincipal(), 5)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "GetApprovedByID")
}
