package dto

import (
	"github.com/yigit/campussphere/internal/app/models"
)

// StudentProfileUpdateRequest is the sparse update payload for student
// profiles. Every field is optional; unknown JSON fields are ignored by the
// decoder. The set of recognized fields is fixed here rather than built from
// the request at runtime.
type StudentProfileUpdateRequest struct {
	FullName     *string            `json:"full_name"`
	Bio          *string            `json:"bio"`
	Branch       *string            `json:"branch"`
	Semester     *string            `json:"semester"`
	Class        *string            `json:"class"`
	EnrollmentNo *string            `json:"enrollment_no"`
	AvatarURL    *string            `json:"avatar_url"`
	Skills       *models.StringList `json:"skills"`
	Department   *string            `json:"department"` // Resolved by name; unknown names are dropped
}

// IsEmpty reports whether no recognized field was provided
func (r *StudentProfileUpdateRequest) IsEmpty() bool {
	return r.FullName == nil && r.Bio == nil && r.Branch == nil &&
		r.Semester == nil && r.Class == nil && r.EnrollmentNo == nil &&
		r.AvatarURL == nil && r.Skills == nil && r.Department == nil
}

// FacultyProfileUpdateRequest is the sparse update payload for faculty
// profiles. User-table fields and faculty-profile fields are applied inside a
// single transaction.
type FacultyProfileUpdateRequest struct {
	FullName            *string            `json:"full_name"`
	Bio                 *string            `json:"bio"`
	AvatarURL           *string            `json:"avatar_url"`
	Skills              *models.StringList `json:"skills"`
	Designation         *string            `json:"designation"`
	MentorshipCapacity  *int               `json:"mentorship_capacity"`
	IsAcceptingRequests *bool              `json:"is_accepting_requests"`
	OfficeLocation      *string            `json:"office_location"`
	AreasOfExpertise    *models.StringList `json:"areas_of_expertise"`
}

// HasUserFields reports whether any users-table field was provided
func (r *FacultyProfileUpdateRequest) HasUserFields() bool {
	return r.FullName != nil || r.Bio != nil || r.AvatarURL != nil || r.Skills != nil
}

// HasProfileFields reports whether any faculty_profiles-table field was provided
func (r *FacultyProfileUpdateRequest) HasProfileFields() bool {
	return r.Designation != nil || r.MentorshipCapacity != nil ||
		r.IsAcceptingRequests != nil || r.OfficeLocation != nil || r.AreasOfExpertise != nil
}

// IsEmpty reports whether no recognized field was provided
func (r *FacultyProfileUpdateRequest) IsEmpty() bool {
	return !r.HasUserFields() && !r.HasProfileFields()
}

// FacultyProfileView is the flat faculty profile payload: the user row joined
// with department and faculty_profiles columns.
type FacultyProfileView struct {
	models.User
	Designation         *string           `json:"designation"`
	AreasOfExpertise    models.StringList `json:"areas_of_expertise"`
	MentorshipCapacity  *int              `json:"mentorship_capacity"`
	CurrentMentees      *int              `json:"current_mentees"`
	IsAcceptingRequests *bool             `json:"is_accepting_requests"`
	OfficeLocation      *string           `json:"office_location"`
}
