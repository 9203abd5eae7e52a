package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/repositories"
	"github.com/yigit/campussphere/internal/db"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
	"github.com/yigit/campussphere/internal/pkg/logger"
)

// ProfileService handles student and faculty profile reads and sparse updates
type ProfileService struct {
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
	tx             db.Transactor
}

// NewProfileService creates a new profile service instance
func NewProfileService(userRepo repositories.IUserRepository, departmentRepo repositories.IDepartmentRepository, tx db.Transactor) *ProfileService {
	return &ProfileService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		tx:             tx,
	}
}

// GetStudentProfile returns the student's own profile
func (s *ProfileService) GetStudentProfile(ctx context.Context, principal *models.Principal) (*models.User, error) {
	if err := Authorize(principal, OpUpdateStudentProfile); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetStudentByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateStudentProfile applies the provided profile fields. Unrecognized
// fields never reach this layer; an update without any recognized field is
// rejected. Unknown department names are dropped silently.
func (s *ProfileService) UpdateStudentProfile(ctx context.Context, principal *models.Principal, req *dto.StudentProfileUpdateRequest) error {
	if err := Authorize(principal, OpUpdateStudentProfile); err != nil {
		return err
	}

	if req.IsEmpty() {
		return apperrors.NewValidationError("No valid fields to update")
	}

	var departmentID *int64
	if req.Department != nil {
		id, found, err := s.departmentRepo.GetIDByName(ctx, *req.Department)
		if err != nil {
			return fmt.Errorf("error resolving department: %w", err)
		}
		if found {
			departmentID = &id
		}
	}

	updated, err := s.userRepo.UpdateStudentProfile(ctx, principal.UserID, req, departmentID)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if !updated {
		return apperrors.NewValidationError("No valid fields to update")
	}

	logger.Info().Int64("user_id", principal.UserID).Msg("Student profile updated")
	return nil
}

// GetFacultyProfile returns the faculty member's own profile with faculty
// profile fields joined in
func (s *ProfileService) GetFacultyProfile(ctx context.Context, principal *models.Principal) (*dto.FacultyProfileView, error) {
	if err := Authorize(principal, OpUpdateFacultyProfile); err != nil {
		return nil, err
	}

	view, err := s.userRepo.GetFacultyProfileByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	view.PasswordHash = ""
	return view, nil
}

// UpdateFacultyProfile applies user-table and faculty-profile fields in one
// transaction
func (s *ProfileService) UpdateFacultyProfile(ctx context.Context, principal *models.Principal, req *dto.FacultyProfileUpdateRequest) error {
	if err := Authorize(principal, OpUpdateFacultyProfile); err != nil {
		return err
	}

	if req.IsEmpty() {
		return apperrors.NewValidationError("No valid fields to update")
	}

	if req.MentorshipCapacity != nil && *req.MentorshipCapacity < 0 {
		return apperrors.NewValidationError("Mentorship capacity cannot be negative")
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if req.HasUserFields() {
			if err := s.userRepo.UpdateUserFieldsTx(ctx, tx, principal.UserID, req); err != nil {
				return err
			}
		}
		if req.HasProfileFields() {
			if err := s.userRepo.UpdateFacultyProfileTx(ctx, tx, principal.UserID, req); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error updating faculty profile: %w", err)
	}

	logger.Info().Int64("user_id", principal.UserID).Msg("Faculty profile updated")
	return nil
}

// ListDepartments returns all departments for profile forms
func (s *ProfileService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}
