package auth

import (
	"errors"
	"testing"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

func TestPermissionMatrix(t *testing.T) {
	tests := []struct {
		perm    Permission
		admin   bool
		student bool
		mentor  bool
	}{
		{PermViewStats, true, false, false},
		{PermListUsers, true, false, false},
		{PermViewOwnProfile, false, true, true},
		{PermUpdateOwnProfile, false, true, true},
		{PermMatchMentors, false, true, false},
		{PermMatchInternships, false, true, false},
		{PermViewSkillGap, false, true, false},
		{PermCreateRequest, false, true, false},
		{PermListOwnRequests, false, true, true},
		{PermDecideRequest, false, false, true},
		{PermChat, false, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.perm), func(t *testing.T) {
			if got := Can(models.RoleAdmin, tt.perm); got != tt.admin {
				t.Errorf("admin: got %v want %v", got, tt.admin)
			}
			if got := Can(models.RoleStudent, tt.perm); got != tt.student {
				t.Errorf("student: got %v want %v", got, tt.student)
			}
			if got := Can(models.RoleMentor, tt.perm); got != tt.mentor {
				t.Errorf("mentor: got %v want %v", got, tt.mentor)
			}
		})
	}

	if len(tests) != len(allPermissions) {
		t.Fatalf("matrix covers %d permissions, want %d", len(tests), len(allPermissions))
	}
}

func TestUnknownRoleHoldsNothing(t *testing.T) {
	for _, p := range allPermissions {
		if Can("Guest", p) {
			t.Errorf("Guest unexpectedly holds %s", p)
		}
	}
}

func TestAuthorizeReturnsForbidden(t *testing.T) {
	if err := Authorize(models.RoleStudent, PermChat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Authorize(models.RoleMentor, PermMatchMentors)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("got %v want ErrForbidden", err)
	}
}

func TestValidateRequestMentor(t *testing.T) {
	req := &models.MentorshipRequest{ID: "r1", StudentID: "s1", MentorID: "m1"}

	if err := ValidateRequestMentor(req, "m1"); err != nil {
		t.Errorf("mentor rejected: %v", err)
	}
	if err := ValidateRequestMentor(req, "s1"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("student deciding: got %v want ErrForbidden", err)
	}
	if err := ValidateRequestMentor(req, "x"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("outsider deciding: got %v want ErrForbidden", err)
	}
}

var allPermissions = []Permission{
	PermViewStats, PermListUsers, PermViewOwnProfile, PermUpdateOwnProfile,
	PermMatchMentors, PermMatchInternships, PermViewSkillGap, PermCreateRequest,
	PermListOwnRequests, PermDecideRequest, PermChat,
}
