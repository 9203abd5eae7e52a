package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error)
	CreateFacultyProfileTx(ctx context.Context, tx pgx.Tx, userID int64, mentorshipCapacity int, acceptingRequests bool) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetStudentByID(ctx context.Context, id int64) (*models.User, error)
	GetFacultyProfileByID(ctx context.Context, id int64) (*dto.FacultyProfileView, error)
	UpdateStudentProfile(ctx context.Context, userID int64, upd *dto.StudentProfileUpdateRequest, departmentID *int64) (bool, error)
	UpdateUserFieldsTx(ctx context.Context, tx pgx.Tx, userID int64, upd *dto.FacultyProfileUpdateRequest) error
	UpdateFacultyProfileTx(ctx context.Context, tx pgx.Tx, userID int64, upd *dto.FacultyProfileUpdateRequest) error
	TouchUpdatedAt(ctx context.Context, userID int64) error
	List(ctx context.Context, role, status string) ([]dto.AdminUserView, error)
	SetStatus(ctx context.Context, userID int64, status models.UserStatus) error
	Delete(ctx context.Context, userID int64) error
}

// UserRepository handles database operations for users and faculty profiles
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `u.id, u.full_name, u.email, u.password_hash, u.role, u.status,
	u.department_id, u.bio, u.branch, u.semester, u.class, u.enrollment_no,
	u.avatar_url, u.skills, u.created_at, u.updated_at`

// scanUser scans a user row selected with userColumns plus department name and code
func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var skills *string

	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.DepartmentID,
		&user.Bio,
		&user.Branch,
		&user.Semester,
		&user.Class,
		&user.EnrollmentNo,
		&user.AvatarURL,
		&skills,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DepartmentName,
		&user.DepartmentCode,
	)
	if err != nil {
		return nil, err
	}

	user.Skills = models.ParseStoredList(skills)
	return &user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateUserTx inserts a new user within a transaction
func (r *UserRepository) CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (full_name, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	user.ID = id
	return id, nil
}

// CreateFacultyProfileTx inserts the faculty profile row within the same
// transaction as the user insert, so a faculty account never exists without one.
func (r *UserRepository) CreateFacultyProfileTx(ctx context.Context, tx pgx.Tx, userID int64, mentorshipCapacity int, acceptingRequests bool) error {
	query := `
		INSERT INTO faculty_profiles (user_id, mentorship_capacity, is_accepting_requests)
		VALUES ($1, $2, $3)
	`

	_, err := tx.Exec(ctx, query, userID, mentorshipCapacity, acceptingRequests)
	return err
}

// GetByEmail retrieves a user by email with department info joined
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s, d.name, d.code
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		WHERE u.email = $1
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by id with department info joined
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s, d.name, d.code
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		WHERE u.id = $1
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetStudentByID retrieves a user by id constrained to the student role
func (r *UserRepository) GetStudentByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s, d.name, d.code
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		WHERE u.id = $1 AND u.role = 'student'
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetFacultyProfileByID retrieves a faculty user joined with their faculty profile
func (r *UserRepository) GetFacultyProfileByID(ctx context.Context, id int64) (*dto.FacultyProfileView, error) {
	query := fmt.Sprintf(`
		SELECT %s, d.name, d.code,
		       fp.designation, fp.areas_of_expertise, fp.mentorship_capacity,
		       fp.current_mentees, fp.is_accepting_requests, fp.office_location
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		LEFT JOIN faculty_profiles fp ON u.id = fp.user_id
		WHERE u.id = $1 AND u.role = 'faculty'
	`, userColumns)

	var view dto.FacultyProfileView
	var skills, expertise *string

	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.FullName,
		&view.Email,
		&view.PasswordHash,
		&view.Role,
		&view.Status,
		&view.DepartmentID,
		&view.Bio,
		&view.Branch,
		&view.Semester,
		&view.Class,
		&view.EnrollmentNo,
		&view.AvatarURL,
		&skills,
		&view.CreatedAt,
		&view.UpdatedAt,
		&view.DepartmentName,
		&view.DepartmentCode,
		&view.Designation,
		&expertise,
		&view.MentorshipCapacity,
		&view.CurrentMentees,
		&view.IsAcceptingRequests,
		&view.OfficeLocation,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	view.Skills = models.ParseStoredList(skills)
	view.AreasOfExpertise = models.ParseStoredList(expertise)
	return &view, nil
}

// UpdateStudentProfile applies the recognized student profile fields as a
// single parameterized UPDATE. Column names come from the fixed allow-list
// below; values are always bound, never concatenated. Returns false when no
// field was set.
func (r *UserRepository) UpdateStudentProfile(ctx context.Context, userID int64, upd *dto.StudentProfileUpdateRequest, departmentID *int64) (bool, error) {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.Branch != nil {
		add("branch", *upd.Branch)
	}
	if upd.Semester != nil {
		add("semester", *upd.Semester)
	}
	if upd.Class != nil {
		add("class", *upd.Class)
	}
	if upd.EnrollmentNo != nil {
		add("enrollment_no", *upd.EnrollmentNo)
	}
	if upd.AvatarURL != nil {
		add("avatar_url", *upd.AvatarURL)
	}
	if upd.Skills != nil {
		add("skills", upd.Skills.Stored())
	}
	if departmentID != nil {
		add("department_id", *departmentID)
	}

	if len(set) == 0 {
		return false, nil
	}

	args = append(args, userID)
	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(set, ", "), len(args),
	)

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return false, err
	}

	return true, nil
}

// UpdateUserFieldsTx applies the users-table part of a faculty profile update
func (r *UserRepository) UpdateUserFieldsTx(ctx context.Context, tx pgx.Tx, userID int64, upd *dto.FacultyProfileUpdateRequest) error {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.AvatarURL != nil {
		add("avatar_url", *upd.AvatarURL)
	}
	if upd.Skills != nil {
		add("skills", upd.Skills.Stored())
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, userID)
	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(set, ", "), len(args),
	)

	_, err := tx.Exec(ctx, query, args...)
	return err
}

// UpdateFacultyProfileTx applies the faculty_profiles-table part of a faculty
// profile update
func (r *UserRepository) UpdateFacultyProfileTx(ctx context.Context, tx pgx.Tx, userID int64, upd *dto.FacultyProfileUpdateRequest) error {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Designation != nil {
		add("designation", *upd.Designation)
	}
	if upd.MentorshipCapacity != nil {
		add("mentorship_capacity", *upd.MentorshipCapacity)
	}
	if upd.IsAcceptingRequests != nil {
		add("is_accepting_requests", *upd.IsAcceptingRequests)
	}
	if upd.OfficeLocation != nil {
		add("office_location", *upd.OfficeLocation)
	}
	if upd.AreasOfExpertise != nil {
		add("areas_of_expertise", upd.AreasOfExpertise.Stored())
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, userID)
	query := fmt.Sprintf(
		"UPDATE faculty_profiles SET %s, updated_at = NOW() WHERE user_id = $%d",
		strings.Join(set, ", "), len(args),
	)

	_, err := tx.Exec(ctx, query, args...)
	return err
}

// TouchUpdatedAt bumps the updated_at column, recorded on every login
func (r *UserRepository) TouchUpdatedAt(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET updated_at = NOW() WHERE id = $1`, userID)
	return err
}

// List retrieves all users with optional role and status filters
func (r *UserRepository) List(ctx context.Context, role, status string) ([]dto.AdminUserView, error) {
	query := fmt.Sprintf(`
		SELECT %s, d.name, d.code
		FROM users u
		LEFT JOIN departments d ON u.department_id = d.id
		WHERE ($1 = '' OR u.role = $1)
		  AND ($2 = '' OR u.status = $2)
		ORDER BY u.created_at DESC
	`, userColumns)

	rows, err := r.db.Query(ctx, query, role, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []dto.AdminUserView{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = ""
		users = append(users, dto.AdminUserView{User: *user})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// SetStatus updates a user's account status
func (r *UserRepository) SetStatus(ctx context.Context, userID int64, status models.UserStatus) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, status, userID)
	return err
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return err
}
