package models

import (
	"time"
)

// Role defines the user roles recognized by the platform
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is one of the recognized roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// UserStatus defines the account status values
type UserStatus string

const (
	StatusActive              UserStatus = "active"
	StatusSuspended           UserStatus = "suspended"
	StatusPendingVerification UserStatus = "pending_verification"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id"`
	FullName     string     `json:"full_name" db:"full_name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Excluded from JSON
	Role         Role       `json:"role" db:"role"`       // Immutable after creation
	Status       UserStatus `json:"status" db:"status"`
	DepartmentID *int64     `json:"department_id,omitempty" db:"department_id"`
	Bio          *string    `json:"bio,omitempty" db:"bio"`
	Branch       *string    `json:"branch,omitempty" db:"branch"`
	Semester     *string    `json:"semester,omitempty" db:"semester"`
	Class        *string    `json:"class,omitempty" db:"class"`
	EnrollmentNo *string    `json:"enrollment_no,omitempty" db:"enrollment_no"`
	AvatarURL    *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Skills       StringList `json:"skills" db:"skills"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`

	DepartmentName *string `json:"department_name,omitempty"` // Joined, no db column
	DepartmentCode *string `json:"department_code,omitempty"` // Joined, no db column
}

// FacultyProfile defines the faculty-specific profile based on the 'faculty_profiles' table
type FacultyProfile struct {
	UserID              int64      `json:"user_id" db:"user_id"`
	Designation         *string    `json:"designation,omitempty" db:"designation"`
	AreasOfExpertise    StringList `json:"areas_of_expertise" db:"areas_of_expertise"`
	MentorshipCapacity  int        `json:"mentorship_capacity" db:"mentorship_capacity"`
	CurrentMentees      int        `json:"current_mentees" db:"current_mentees"`
	IsAcceptingRequests bool       `json:"is_accepting_requests" db:"is_accepting_requests"`
	OfficeLocation      *string    `json:"office_location,omitempty" db:"office_location"`
}

// Principal is the authenticated user attached to a request by the session
// middleware and passed explicitly into every workflow operation.
type Principal struct {
	UserID   int64
	Role     Role
	Email    string
	FullName string
}
