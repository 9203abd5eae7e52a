package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/pkg/apperrors"
)

func TestAuthorize_NilPrincipal(t *testing.T) {
	err := Authorize(nil, OpViewOwnProfile)
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
}

func TestAuthorize_UnknownOperation(t *testing.T) {
	err := Authorize(adminPrincipal(), Operation("does.not.exist"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAuthorize_RoleTable(t *testing.T) {
	cases := []struct {
		name      string
		principal *models.Principal
		op        Operation
		allowed   bool
	}{
		{"student views own profile", studentPrincipal(), OpViewOwnProfile, true},
		{"faculty views own profile", facultyPrincipal(), OpViewOwnProfile, true},
		{"admin views own profile", adminPrincipal(), OpViewOwnProfile, true},
		{"student registers for event", studentPrincipal(), OpRegisterForEvent, true},
		{"faculty cannot register for event", facultyPrincipal(), OpRegisterForEvent, false},
		{"student submits proposal", studentPrincipal(), OpSubmitProposal, true},
		{"admin cannot submit proposal", adminPrincipal(), OpSubmitProposal, false},
		{"faculty reviews proposal", facultyPrincipal(), OpReviewProposal, true},
		{"student cannot review proposal", studentPrincipal(), OpReviewProposal, false},
		{"admin cannot review proposal", adminPrincipal(), OpReviewProposal, false},
		{"faculty views mentorship", facultyPrincipal(), OpViewMentorship, true},
		{"student cannot view mentorship", studentPrincipal(), OpViewMentorship, false},
		{"admin views analytics", adminPrincipal(), OpViewAnalytics, true},
		{"faculty cannot view analytics", facultyPrincipal(), OpViewAnalytics, false},
		{"admin manages settings", adminPrincipal(), OpManagePlatformSetting, true},
		{"student cannot manage settings", studentPrincipal(), OpManagePlatformSetting, false},
		{"student expresses interest", studentPrincipal(), OpExpressInterest, true},
		{"faculty cannot express interest", facultyPrincipal(), OpExpressInterest, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.principal, tc.op)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
			}
		})
	}
}
