package auth

import (
	"fmt"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

// Permission names an action a role may perform
type Permission string

const (
	PermViewStats        Permission = "view_stats"
	PermListUsers        Permission = "list_users"
	PermViewOwnProfile   Permission = "view_own_profile"
	PermUpdateOwnProfile Permission = "update_own_profile"
	PermMatchMentors     Permission = "match_mentors"
	PermMatchInternships Permission = "match_internships"
	PermViewSkillGap     Permission = "view_skill_gap"
	PermCreateRequest    Permission = "create_request"
	PermListOwnRequests  Permission = "list_own_requests"
	PermDecideRequest    Permission = "decide_request"
	PermChat             Permission = "chat"
)

var rolePermissions = map[models.RoleType]map[Permission]bool{
	models.RoleAdmin: {
		PermViewStats: true,
		PermListUsers: true,
	},
	models.RoleStudent: {
		PermViewOwnProfile:   true,
		PermUpdateOwnProfile: true,
		PermMatchMentors:     true,
		PermMatchInternships: true,
		PermViewSkillGap:     true,
		PermCreateRequest:    true,
		PermListOwnRequests:  true,
		PermChat:             true,
	},
	models.RoleMentor: {
		PermViewOwnProfile:   true,
		PermUpdateOwnProfile: true,
		PermListOwnRequests:  true,
		PermDecideRequest:    true,
		PermChat:             true,
	},
}

// Can reports whether role holds perm. Unknown roles hold nothing.
func Can(role models.RoleType, perm Permission) bool {
	return rolePermissions[role][perm]
}

// Authorize returns a Forbidden error unless role holds perm
func Authorize(role models.RoleType, perm Permission) error {
	if Can(role, perm) {
		return nil
	}
	return apperrors.NewCustomError(apperrors.ErrForbidden,
		fmt.Sprintf("role %q is not allowed to %s", role, perm))
}

// ValidateRequestMentor ensures actorID is the mentor a request is addressed to
func ValidateRequestMentor(req *models.MentorshipRequest, actorID string) error {
	if req.MentorID != actorID {
		return apperrors.NewForbiddenError("only the requested mentor can decide this request")
	}
	return nil
}
