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
	"github.com/yigit/campussphere/internal/pkg/helpers"
	"github.com/yigit/campussphere/internal/pkg/logger"
)

// AdminService handles the admin dashboard: user management, event oversight,
// announcements, platform settings and analytics.
type AdminService struct {
	userRepo         repositories.IUserRepository
	eventRepo        repositories.IEventRepository
	announcementRepo repositories.IAnnouncementRepository
	settingsRepo     repositories.ISettingsRepository
	analyticsRepo    repositories.IAnalyticsRepository
	tx               db.Transactor
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	userRepo repositories.IUserRepository,
	eventRepo repositories.IEventRepository,
	announcementRepo repositories.IAnnouncementRepository,
	settingsRepo repositories.ISettingsRepository,
	analyticsRepo repositories.IAnalyticsRepository,
	tx db.Transactor,
) *AdminService {
	return &AdminService{
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		announcementRepo: announcementRepo,
		settingsRepo:     settingsRepo,
		analyticsRepo:    analyticsRepo,
		tx:               tx,
	}
}

// GetAnalytics assembles the four dashboard aggregates
func (s *AdminService) GetAnalytics(ctx context.Context, principal *models.Principal) (*dto.AnalyticsResponse, error) {
	if err := Authorize(principal, OpViewAnalytics); err != nil {
		return nil, err
	}

	userStats, err := s.analyticsRepo.UserStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user stats: %w", err)
	}

	eventStats, err := s.analyticsRepo.EventStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event stats: %w", err)
	}

	monthly, err := s.analyticsRepo.MonthlyParticipation(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving monthly participation: %w", err)
	}

	departments, err := s.analyticsRepo.DepartmentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department stats: %w", err)
	}

	return &dto.AnalyticsResponse{
		UserStats:            userStats,
		EventStats:           eventStats,
		MonthlyParticipation: monthly,
		DepartmentStats:      departments,
	}, nil
}

// ListUsers returns all users, optionally filtered by role and status
func (s *AdminService) ListUsers(ctx context.Context, principal *models.Principal, role, status string) ([]dto.AdminUserView, error) {
	if err := Authorize(principal, OpManageUsers); err != nil {
		return nil, err
	}

	return s.userRepo.List(ctx, role, status)
}

// HandleUserAction applies an admin decision to a user account: approve
// activates it, deny and remove delete it.
func (s *AdminService) HandleUserAction(ctx context.Context, principal *models.Principal, userID int64, action string) (string, error) {
	if err := Authorize(principal, OpManageUsers); err != nil {
		return "", err
	}

	if action == "" {
		return "", apperrors.NewValidationError("Action is required")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	var message string
	switch action {
	case "approve":
		if err := s.userRepo.SetStatus(ctx, userID, models.StatusActive); err != nil {
			return "", fmt.Errorf("error approving user: %w", err)
		}
		message = "User approved successfully"
	case "deny", "remove":
		if err := s.userRepo.Delete(ctx, userID); err != nil {
			return "", fmt.Errorf("error removing user: %w", err)
		}
		message = "User removed from system"
	default:
		return "", apperrors.NewValidationError("Invalid action")
	}

	logger.Info().
		Int64("user_id", userID).
		Int64("admin_id", principal.UserID).
		Str("action", action).
		Msg("User action applied")

	return message, nil
}

// ListAllEvents returns every event regardless of status
func (s *AdminService) ListAllEvents(ctx context.Context, principal *models.Principal) ([]dto.AdminEventView, error) {
	if err := Authorize(principal, OpManageEvents); err != nil {
		return nil, err
	}

	return s.eventRepo.ListAll(ctx)
}

// FeatureEvent toggles an event's homepage featured flag
func (s *AdminService) FeatureEvent(ctx context.Context, principal *models.Principal, eventID int64, req *dto.FeatureEventRequest) (string, error) {
	if err := Authorize(principal, OpManageEvents); err != nil {
		return "", err
	}

	if req.Featured == nil {
		return "", apperrors.NewValidationError("Featured status is required")
	}

	updated, err := s.eventRepo.SetFeatured(ctx, eventID, *req.Featured)
	if err != nil {
		return "", fmt.Errorf("error featuring event: %w", err)
	}
	if !updated {
		return "", apperrors.NewResourceNotFoundError("Event not found")
	}

	if *req.Featured {
		return "Event featured successfully", nil
	}
	return "Event unfeatured successfully", nil
}

// ListAnnouncements returns all announcements, newest first
func (s *AdminService) ListAnnouncements(ctx context.Context, principal *models.Principal) ([]dto.AnnouncementView, error) {
	if err := Authorize(principal, OpManageAnnouncements); err != nil {
		return nil, err
	}

	return s.announcementRepo.List(ctx)
}

// CreateAnnouncement creates a new announcement authored by the admin
func (s *AdminService) CreateAnnouncement(ctx context.Context, principal *models.Principal, req *dto.CreateAnnouncementRequest) error {
	if err := Authorize(principal, OpManageAnnouncements); err != nil {
		return err
	}

	if req.Title == "" || req.Message == "" || req.TargetAudience == "" {
		return apperrors.NewValidationError("Missing required fields")
	}

	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}

	announcement := &models.Announcement{
		Title:          req.Title,
		Message:        req.Message,
		TargetAudience: req.TargetAudience,
		Priority:       priority,
		IsBanner:       req.IsBanner,
		CreatedBy:      principal.UserID,
	}

	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		expires, err := helpers.ParseDateTime(*req.ExpiresAt)
		if err != nil {
			return apperrors.NewValidationError("Invalid datetime format")
		}
		announcement.ExpiresAt = &expires
	}

	if _, err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}

	logger.Info().
		Int64("announcement_id", announcement.ID).
		Int64("admin_id", principal.UserID).
		Msg("Announcement created")

	return nil
}

// GetSettings returns the platform settings as a key/value map
func (s *AdminService) GetSettings(ctx context.Context, principal *models.Principal) (map[string]string, error) {
	if err := Authorize(principal, OpManagePlatformSetting); err != nil {
		return nil, err
	}

	return s.settingsRepo.GetAll(ctx)
}

// UpdateSettings upserts every provided key/value pair in one transaction
func (s *AdminService) UpdateSettings(ctx context.Context, principal *models.Principal, settings map[string]string) error {
	if err := Authorize(principal, OpManagePlatformSetting); err != nil {
		return err
	}

	if len(settings) == 0 {
		return apperrors.NewValidationError("No settings data provided")
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for key, value := range settings {
			if err := s.settingsRepo.UpsertTx(ctx, tx, key, value, principal.UserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error updating settings: %w", err)
	}

	logger.Info().
		Int64("admin_id", principal.UserID).
		Int("settings", len(settings)).
		Msg("Platform settings updated")

	return nil
}
