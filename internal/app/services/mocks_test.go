package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/db"
)

// immediateTransactor runs the callback directly, standing in for a real
// database transaction.
type immediateTransactor struct{}

func (immediateTransactor) WithTx(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

// mockEventRepository is a testify mock of repositories.IEventRepository
type mockEventRepository struct {
	mock.Mock
}

func (m *mockEventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEventRepository) GetApprovedByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *mockEventRepository) CountRegistrations(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *mockEventRepository) IsRegistered(ctx context.Context, userID, eventID int64) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepository) CreateRegistration(ctx context.Context, userID, eventID int64) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *mockEventRepository) ListApprovedForStudent(ctx context.Context, viewerID int64) ([]dto.StudentEventView, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StudentEventView), args.Error(1)
}

func (m *mockEventRepository) ListOrganizedBy(ctx context.Context, organizerID int64) ([]dto.OrganizedEventView, error) {
	args := m.Called(ctx, organizerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.OrganizedEventView), args.Error(1)
}

func (m *mockEventRepository) ListByOrganizerOrReviewer(ctx context.Context, facultyID int64) ([]dto.FacultyEventView, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.FacultyEventView), args.Error(1)
}

func (m *mockEventRepository) ListPendingProposals(ctx context.Context) ([]dto.ProposalView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProposalView), args.Error(1)
}

func (m *mockEventRepository) IsPendingProposal(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepository) Review(ctx context.Context, id int64, status models.EventStatus, reviewerID int64, notes string) (bool, error) {
	args := m.Called(ctx, id, status, reviewerID, notes)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepository) ListAll(ctx context.Context) ([]dto.AdminEventView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AdminEventView), args.Error(1)
}

func (m *mockEventRepository) SetFeatured(ctx context.Context, id int64, featured bool) (bool, error) {
	args := m.Called(ctx, id, featured)
	return args.Bool(0), args.Error(1)
}

// mockCollaborationRepository is a testify mock of repositories.ICollaborationRepository
type mockCollaborationRepository struct {
	mock.Mock
}

func (m *mockCollaborationRepository) ListActive(ctx context.Context, viewerID int64) ([]dto.CollaborationPostView, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CollaborationPostView), args.Error(1)
}

func (m *mockCollaborationRepository) Create(ctx context.Context, post *models.CollaborationPost) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCollaborationRepository) GetActiveByID(ctx context.Context, id int64) (*models.CollaborationPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollaborationPost), args.Error(1)
}

func (m *mockCollaborationRepository) HasInterest(ctx context.Context, postID, userID int64) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCollaborationRepository) CreateInterest(ctx context.Context, postID, userID int64, message string) error {
	args := m.Called(ctx, postID, userID, message)
	return args.Error(0)
}

func (m *mockCollaborationRepository) ListRecentActive(ctx context.Context, limit int) ([]dto.FeedPostView, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.FeedPostView), args.Error(1)
}

// mockMentorshipRepository is a testify mock of repositories.IMentorshipRepository
type mockMentorshipRepository struct {
	mock.Mock
}

func (m *mockMentorshipRepository) ListActiveMentees(ctx context.Context, mentorID int64) ([]dto.MenteeView, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MenteeView), args.Error(1)
}

// mockUserRepository is a testify mock of repositories.IUserRepository
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	args := m.Called(ctx, tx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) CreateFacultyProfileTx(ctx context.Context, tx pgx.Tx, userID int64, mentorshipCapacity int, acceptingRequests bool) error {
	args := m.Called(ctx, tx, userID, mentorshipCapacity, acceptingRequests)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetStudentByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetFacultyProfileByID(ctx context.Context, id int64) (*dto.FacultyProfileView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FacultyProfileView), args.Error(1)
}

func (m *mockUserRepository) UpdateStudentProfile(ctx context.Context, userID int64, upd *dto.StudentProfileUpdateRequest, departmentID *int64) (bool, error) {
	args := m.Called(ctx, userID, upd, departmentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) UpdateUserFieldsTx(ctx context.Context, tx pgx.Tx, userID int64, upd *dto.FacultyProfileUpdateRequest) error {
	args := m.Called(ctx, tx, userID, upd)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateFacultyProfileTx(ctx context.Context, tx pgx.Tx, userID int64, upd *dto.FacultyProfileUpdateRequest) error {
	args := m.Called(ctx, tx, userID, upd)
	return args.Error(0)
}

func (m *mockUserRepository) TouchUpdatedAt(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserRepository) List(ctx context.Context, role, status string) ([]dto.AdminUserView, error) {
	args := m.Called(ctx, role, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AdminUserView), args.Error(1)
}

func (m *mockUserRepository) SetStatus(ctx context.Context, userID int64, status models.UserStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// mockDepartmentRepository is a testify mock of repositories.IDepartmentRepository
type mockDepartmentRepository struct {
	mock.Mock
}

func (m *mockDepartmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *mockDepartmentRepository) GetIDByName(ctx context.Context, name string) (int64, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// mockAnnouncementRepository is a testify mock of repositories.IAnnouncementRepository
type mockAnnouncementRepository struct {
	mock.Mock
}

func (m *mockAnnouncementRepository) List(ctx context.Context) ([]dto.AnnouncementView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AnnouncementView), args.Error(1)
}

func (m *mockAnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) (int64, error) {
	args := m.Called(ctx, announcement)
	return args.Get(0).(int64), args.Error(1)
}

// mockSettingsRepository is a testify mock of repositories.ISettingsRepository
type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *mockSettingsRepository) UpsertTx(ctx context.Context, tx pgx.Tx, key, value string, updatedBy int64) error {
	args := m.Called(ctx, tx, key, value, updatedBy)
	return args.Error(0)
}

// mockAnalyticsRepository is a testify mock of repositories.IAnalyticsRepository
type mockAnalyticsRepository struct {
	mock.Mock
}

func (m *mockAnalyticsRepository) UserStats(ctx context.Context) ([]dto.RoleStatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RoleStatusCount), args.Error(1)
}

func (m *mockAnalyticsRepository) EventStats(ctx context.Context) ([]dto.CategoryStatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoryStatusCount), args.Error(1)
}

func (m *mockAnalyticsRepository) MonthlyParticipation(ctx context.Context) ([]dto.MonthlyRegistrations, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MonthlyRegistrations), args.Error(1)
}

func (m *mockAnalyticsRepository) DepartmentStats(ctx context.Context) ([]dto.DepartmentEngagement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DepartmentEngagement), args.Error(1)
}

// Shared test principals
func studentPrincipal() *models.Principal {
	return &models.Principal{UserID: 11, Role: models.RoleStudent, Email: "student@campus.edu", FullName: "Student One"}
}

func facultyPrincipal() *models.Principal {
	return &models.Principal{UserID: 21, Role: models.RoleFaculty, Email: "faculty@campus.edu", FullName: "Faculty One"}
}

func adminPrincipal() *models.Principal {
	return &models.Principal{UserID: 31, Role: models.RoleAdmin, Email: "admin@campus.edu", FullName: "Admin One"}
}
