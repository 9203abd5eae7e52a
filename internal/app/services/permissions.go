package services

import (
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
)

// Operation names every privileged action on the platform
type Operation string

const (
	OpViewOwnProfile        Operation = "profile.view"
	OpUpdateStudentProfile  Operation = "profile.student.update"
	OpUpdateFacultyProfile  Operation = "profile.faculty.update"
	OpViewStudentEvents     Operation = "events.student.list"
	OpRegisterForEvent      Operation = "events.register"
	OpSubmitProposal        Operation = "events.propose"
	OpViewOrganizedEvents   Operation = "events.organized.list"
	OpViewCollaborations    Operation = "collab.list"
	OpCreateCollaboration   Operation = "collab.create"
	OpExpressInterest       Operation = "collab.interest"
	OpViewFacultyEvents     Operation = "events.faculty.list"
	OpCreateFacultyEvent    Operation = "events.faculty.create"
	OpViewProposals         Operation = "proposals.list"
	OpReviewProposal        Operation = "proposals.review"
	OpViewMentorship        Operation = "mentorship.view"
	OpViewAnalytics         Operation = "admin.analytics"
	OpManageUsers           Operation = "admin.users"
	OpManageEvents          Operation = "admin.events"
	OpManageAnnouncements   Operation = "admin.announcements"
	OpManagePlatformSetting Operation = "admin.settings"
)

// operationRoles is the authoritative role table. Route middleware narrows
// what reaches a handler; this table is checked again inside the service so
// no operation depends on wiring alone.
var operationRoles = map[Operation][]models.Role{
	OpViewOwnProfile:        {models.RoleStudent, models.RoleFaculty, models.RoleAdmin},
	OpUpdateStudentProfile:  {models.RoleStudent},
	OpUpdateFacultyProfile:  {models.RoleFaculty},
	OpViewStudentEvents:     {models.RoleStudent},
	OpRegisterForEvent:      {models.RoleStudent},
	OpSubmitProposal:        {models.RoleStudent},
	OpViewOrganizedEvents:   {models.RoleStudent},
	OpViewCollaborations:    {models.RoleStudent},
	OpCreateCollaboration:   {models.RoleStudent},
	OpExpressInterest:       {models.RoleStudent},
	OpViewFacultyEvents:     {models.RoleFaculty},
	OpCreateFacultyEvent:    {models.RoleFaculty},
	OpViewProposals:         {models.RoleFaculty},
	OpReviewProposal:        {models.RoleFaculty},
	OpViewMentorship:        {models.RoleFaculty},
	OpViewAnalytics:         {models.RoleAdmin},
	OpManageUsers:           {models.RoleAdmin},
	OpManageEvents:          {models.RoleAdmin},
	OpManageAnnouncements:   {models.RoleAdmin},
	OpManagePlatformSetting: {models.RoleAdmin},
}

// Authorize checks that the principal exists and its role may perform the
// operation
func Authorize(principal *models.Principal, op Operation) error {
	if principal == nil {
		return apperrors.ErrAuthenticationRequired
	}

	roles, ok := operationRoles[op]
	if !ok {
		return apperrors.ErrPermissionDenied
	}

	for _, role := range roles {
		if principal.Role == role {
			return nil
		}
	}

	return apperrors.ErrPermissionDenied
}
