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

func newAdminService(
	userRepo *mockUserRepository,
	eventRepo *mockEventRepository,
	announcementRepo *mockAnnouncementRepository,
	settingsRepo *mockSettingsRepository,
	analyticsRepo *mockAnalyticsRepository,
) *AdminService {
	return NewAdminService(userRepo, eventRepo, announcementRepo, settingsRepo, analyticsRepo, immediateTransactor{})
}

func TestHandleUserAction_Approve(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := newAdminService(userRepo, new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	userRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.User{ID: 42, Status: models.StatusPendingVerification}, nil)
	userRepo.On("SetStatus", mock.Anything, int64(42), models.StatusActive).Return(nil)

	message, err := service.HandleUserAction(context.Background(), adminPrincipal(), 42, "approve")

	assert.NoError(t, err)
	assert.Equal(t, "User approved successfully", message)
	userRepo.AssertExpectations(t)
}

func TestHandleUserAction_DenyDeletes(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := newAdminService(userRepo, new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	userRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.User{ID: 42}, nil)
	userRepo.On("Delete", mock.Anything, int64(42)).Return(nil)

	message, err := service.HandleUserAction(context.Background(), adminPrincipal(), 42, "deny")

	assert.NoError(t, err)
	assert.Equal(t, "User removed from system", message)
	userRepo.AssertExpectations(t)
}

func TestHandleUserAction_UnknownUser(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := newAdminService(userRepo, new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	userRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, apperrors.ErrUserNotFound)

	_, err := service.HandleUserAction(context.Background(), adminPrincipal(), 42, "approve")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "SetStatus")
}

func TestHandleUserAction_InvalidAction(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := newAdminService(userRepo, new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	userRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&models.User{ID: 42}, nil)

	_, err := service.HandleUserAction(context.Background(), adminPrincipal(), 42, "promote")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Invalid action")
}

func TestHandleUserAction_MissingAction(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := newAdminService(userRepo, new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	_, err := service.HandleUserAction(context.Background(), adminPrincipal(), 42, "")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Action is required")
	userRepo.AssertNotCalled(t, "GetByID")
}

func TestHandleUserAction_StudentDenied(t *testing.T) {
	userRepo := new(mockUserRepository)
	service := newAdminService(userRepo, new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	_, err := service.HandleUserAction(context.Background(), studentPrincipal(), 42, "approve")

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestFeatureEvent_Toggle(t *testing.T) {
	eventRepo := new(mockEventRepository)
	service := newAdminService(new(mockUserRepository), eventRepo, new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	featured := true
	eventRepo.On("SetFeatured", mock.Anything, int64(9), true).Return(true, nil)

	message, err := service.FeatureEvent(context.Background(), adminPrincipal(), 9, &dto.FeatureEventRequest{Featured: &featured})

	assert.NoError(t, err)
	assert.Equal(t, "Event featured successfully", message)

	unfeatured := false
	eventRepo.On("SetFeatured", mock.Anything, int64(9), false).Return(true, nil)

	message, err = service.FeatureEvent(context.Background(), adminPrincipal(), 9, &dto.FeatureEventRequest{Featured: &unfeatured})

	assert.NoError(t, err)
	assert.Equal(t, "Event unfeatured successfully", message)
}

func TestFeatureEvent_MissingFlag(t *testing.T) {
	eventRepo := new(mockEventRepository)
	service := newAdminService(new(mockUserRepository), eventRepo, new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	_, err := service.FeatureEvent(context.Background(), adminPrincipal(), 9, &dto.FeatureEventRequest{})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Featured status is required")
	eventRepo.AssertNotCalled(t, "SetFeatured")
}

func TestFeatureEvent_UnknownEvent(t *testing.T) {
	eventRepo := new(mockEventRepository)
	service := newAdminService(new(mockUserRepository), eventRepo, new(mockAnnouncementRepository), new(mockSettingsRepository), new(mockAnalyticsRepository))

	featured := true
	eventRepo.On("SetFeatured", mock.Anything, int64(9), true).Return(false, nil)

	_, err := service.FeatureEvent(context.Background(), adminPrincipal(), 9, &dto.FeatureEventRequest{Featured: &featured})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, "Event not found")
}

func TestCreateAnnouncement_DefaultsPriority(t *testing.T) {
	announcementRepo := new(mockAnnouncementRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), announcementRepo, new(mockSettingsRepository), new(mockAnalyticsRepository))

	announcementRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Announcement) bool {
		return a.Priority == "normal" && a.CreatedBy == 31 && a.TargetAudience == "all"
	})).Return(int64(1), nil)

	err := service.CreateAnnouncement(context.Background(), adminPrincipal(), &dto.CreateAnnouncementRequest{
		Title:          "Maintenance window",
		Message:        "Platform down Saturday night",
		TargetAudience: "all",
	})

	assert.NoError(t, err)
	announcementRepo.AssertExpectations(t)
}

func TestCreateAnnouncement_MissingFields(t *testing.T) {
	announcementRepo := new(mockAnnouncementRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), announcementRepo, new(mockSettingsRepository), new(mockAnalyticsRepository))

	err := service.CreateAnnouncement(context.Background(), adminPrincipal(), &dto.CreateAnnouncementRequest{
		Title: "Maintenance window",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	announcementRepo.AssertNotCalled(t, "Create")
}

func TestCreateAnnouncement_InvalidExpiry(t *testing.T) {
	announcementRepo := new(mockAnnouncementRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), announcementRepo, new(mockSettingsRepository), new(mockAnalyticsRepository))

	expires := "soon"
	err := service.CreateAnnouncement(context.Background(), adminPrincipal(), &dto.CreateAnnouncementRequest{
		Title:          "Maintenance window",
		Message:        "Platform down Saturday night",
		TargetAudience: "all",
		ExpiresAt:      &expires,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "Invalid datetime format")
}

func TestUpdateSettings_EmptyPayload(t *testing.T) {
	settingsRepo := new(mockSettingsRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), new(mockAnnouncementRepository), settingsRepo, new(mockAnalyticsRepository))

	err := service.UpdateSettings(context.Background(), adminPrincipal(), map[string]string{})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.EqualError(t, err, "No settings data provided")
	settingsRepo.AssertNotCalled(t, "UpsertTx")
}

func TestUpdateSettings_UpsertsAllPairs(t *testing.T) {
	settingsRepo := new(mockSettingsRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), new(mockAnnouncementRepository), settingsRepo, new(mockAnalyticsRepository))

	settingsRepo.On("UpsertTx", mock.Anything, mock.Anything, "platform_name", "CampusSphere", int64(31)).Return(nil)
	settingsRepo.On("UpsertTx", mock.Anything, mock.Anything, "registration_open", "false", int64(31)).Return(nil)

	err := service.UpdateSettings(context.Background(), adminPrincipal(), map[string]string{
		"platform_name":     "CampusSphere",
		"registration_open": "false",
	})

	assert.NoError(t, err)
	settingsRepo.AssertExpectations(t)
}

func TestGetSettings(t *testing.T) {
	settingsRepo := new(mockSettingsRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), new(mockAnnouncementRepository), settingsRepo, new(mockAnalyticsRepository))

	settingsRepo.On("GetAll", mock.Anything).
		Return(map[string]string{"platform_name": "CampusSphere"}, nil)

	settings, err := service.GetSettings(context.Background(), adminPrincipal())

	assert.NoError(t, err)
	assert.Equal(t, "CampusSphere", settings["platform_name"])
}

func TestGetAnalytics_AssemblesAllAggregates(t *testing.T) {
	analyticsRepo := new(mockAnalyticsRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), analyticsRepo)

	analyticsRepo.On("UserStats", mock.Anything).
		Return([]dto.RoleStatusCount{{Role: "student", Status: "active", Count: 12}}, nil)
	analyticsRepo.On("EventStats", mock.Anything).
		Return([]dto.CategoryStatusCount{{Category: "technical", Status: "approved", Count: 3}}, nil)
	analyticsRepo.On("MonthlyParticipation", mock.Anything).
		Return([]dto.MonthlyRegistrations{{Month: "2026-08", Registrations: 40}}, nil)
	analyticsRepo.On("DepartmentStats", mock.Anything).
		Return([]dto.DepartmentEngagement{{Department: "Computer Science", TotalUsers: 12}}, nil)

	analytics, err := service.GetAnalytics(context.Background(), adminPrincipal())

	assert.NoError(t, err)
	assert.Len(t, analytics.UserStats, 1)
	assert.Len(t, analytics.EventStats, 1)
	assert.Len(t, analytics.MonthlyParticipation, 1)
	assert.Len(t, analytics.DepartmentStats, 1)
}

func TestGetAnalytics_FacultyDenied(t *testing.T) {
	analyticsRepo := new(mockAnalyticsRepository)
	service := newAdminService(new(mockUserRepository), new(mockEventRepository), new(mockAnnouncementRepository), new(mockSettingsRepository), analyticsRepo)

	_, err := service.GetAnalytics(context.Background(), facultyPrincipal())

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	analyticsRepo.AssertNotCalled(t, "UserStats")
}
