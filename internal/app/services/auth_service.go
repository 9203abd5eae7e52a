package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/repositories"
	"github.com/yigit/campussphere/internal/db"
	"github.com/yigit/campussphere/internal/metrics"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
	"github.com/yigit/campussphere/internal/pkg/auth"
	"github.com/yigit/campussphere/internal/pkg/dberrors"
	"github.com/yigit/campussphere/internal/pkg/logger"
)

// defaultMentorshipCapacity is the mentee slots a new faculty account starts with
const defaultMentorshipCapacity = 5

// AuthService handles registration, login and session issuance
type AuthService struct {
	userRepo       repositories.IUserRepository
	tx             db.Transactor
	sessionService *auth.SessionService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, tx db.Transactor, sessionService *auth.SessionService) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tx:             tx,
		sessionService: sessionService,
	}
}

// Register creates a new account, immediately active for every role. Faculty
// accounts also get a faculty profile row inside the same transaction; their
// response flags that an admin review is still expected.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if fullName == "" || email == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.NewValidationError("Missing required fields")
	}

	role := models.Role(strings.ToLower(req.Role))
	if !role.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRole, "Invalid role. Must be student, faculty, or admin")
	}

	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Invalid email format")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       models.StatusActive,
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.userRepo.CreateUserTx(ctx, tx, user); err != nil {
			return err
		}

		if role == models.RoleFaculty {
			return s.userRepo.CreateFacultyProfileTx(ctx, tx, user.ID, defaultMentorshipCapacity, true)
		}

		return nil
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().
		Int64("user_id", user.ID).
		Str("role", string(role)).
		Msg("User registered")

	return &dto.RegisterResponse{
		Message:          fmt.Sprintf("Registration successful as %s!", role),
		UserID:           user.ID,
		RequiresApproval: role == models.RoleFaculty,
	}, nil
}

// Login verifies credentials and issues a session token. Accounts in
// pending_verification may still log in; suspended accounts may not.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return "", nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			metrics.ObserveLogin("failure")
			return "", nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
		}
		return "", nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		metrics.ObserveLogin("failure")
		return "", nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
	}

	if user.Status == models.StatusSuspended {
		metrics.ObserveLogin("failure")
		return "", nil, apperrors.NewCustomError(apperrors.ErrAccountSuspended, "Account has been suspended")
	}

	token, err := s.sessionService.IssueToken(user.ID, string(user.Role), user.Email, user.FullName)
	if err != nil {
		return "", nil, fmt.Errorf("error issuing session token: %w", err)
	}

	// Login timestamp is recorded best-effort
	if err := s.userRepo.TouchUpdatedAt(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to record login time")
	}

	metrics.ObserveLogin("success")

	return token, &dto.LoginResponse{
		Message: "Login successful!",
		User: dto.LoginUser{
			ID:         user.ID,
			FullName:   user.FullName,
			Email:      user.Email,
			Role:       string(user.Role),
			Department: user.DepartmentName,
			AvatarURL:  user.AvatarURL,
		},
	}, nil
}

// GetCurrentUser returns the authenticated user's own profile row
func (s *AuthService) GetCurrentUser(ctx context.Context, principal *models.Principal) (*models.User, error) {
	if err := Authorize(principal, OpViewOwnProfile); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
