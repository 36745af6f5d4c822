package dto

import (
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
)

// UserResponse is the public view of a user; the password hash never leaves the service layer
type UserResponse struct {
	ID         string    `json:"id" example:"01912b6e-8f2a-7c3e-9d41-6a0f3c2b1e77"`
	Email      string    `json:"email" example:"ada@mentorbridge.com"`
	Name       string    `json:"name" example:"Ada Lovelace"`
	RoleType   string    `json:"roleType" example:"Student" enums:"Student,Mentor,Admin"`
	Skills     []string  `json:"skills" example:"Python,SQL"`
	CareerGoal string    `json:"careerGoal" example:"Data Scientist"`
	Expertise  string    `json:"expertise,omitempty" example:"Distributed systems"`
	Experience int       `json:"experience" example:"5"`
	Bio        string    `json:"bio" example:"Aspiring data scientist"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewUserResponse converts a user model into its public view
func NewUserResponse(u *models.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		RoleType:   string(u.RoleType),
		Skills:     skills,
		CareerGoal: u.CareerGoal,
		Expertise:  u.Expertise,
		Experience: u.Experience,
		Bio:        u.Bio,
		CreatedAt:  u.CreatedAt,
	}
}

// UpdateProfileRequest carries the profile fields to overwrite; omitted fields stay unchanged.
// Skills are comma-separated text.
type UpdateProfileRequest struct {
	Skills     *string `json:"skills" binding:"omitempty,max=2000" example:"Python, SQL, Statistics"`
	CareerGoal *string `json:"careerGoal" binding:"omitempty,max=100" example:"Data Scientist"`
	Bio        *string `json:"bio" binding:"omitempty,max=2000" example:"Aspiring data scientist"`
	Expertise  *string `json:"expertise" binding:"omitempty,max=200" example:"Machine learning"`
	Experience *int    `json:"experience" binding:"omitempty,min=0,max=80" example:"5"`
}

// UserStatsResponse holds aggregate user counts
type UserStatsResponse struct {
	Total    int64 `json:"total" example:"12"`
	Students int64 `json:"students" example:"8"`
	Mentors  int64 `json:"mentors" example:"3"`
	Admins   int64 `json:"admins" example:"1"`
}

// UserListQuery filters and pages the admin user listing
type UserListQuery struct {
	Role string `form:"role" binding:"omitempty,oneof=Student Mentor Admin"`
	Page int    `form:"page"`
	Size int    `form:"size"`
}

// UserListResponse represents a page of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
