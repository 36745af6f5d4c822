package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"github.com/yigit/mentorbridge/internal/pkg/helpers"
	"github.com/yigit/mentorbridge/internal/pkg/skills"
	"github.com/yigit/mentorbridge/internal/pkg/validation"
)

// UserService handles profile and user listing operations
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns a user by ID
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// BuildProfileUpdate validates request fields and converts them to a ProfileUpdate
func BuildProfileUpdate(req *dto.UpdateProfileRequest) (models.ProfileUpdate, error) {
	var update models.ProfileUpdate

	if req.Skills != nil {
		parsed := skills.Parse(*req.Skills)
		if len(parsed) > validation.MaxSkills {
			return update, apperrors.NewValidationError("skills",
				fmt.Sprintf("at most %d skills are allowed", validation.MaxSkills))
		}
		update.Skills = &parsed
	}
	if req.CareerGoal != nil {
		goal := strings.TrimSpace(*req.CareerGoal)
		update.CareerGoal = &goal
	}
	if req.Bio != nil {
		if !validation.NewStringValidation(*req.Bio).WithRequired(false).WithMaxLength(validation.MaxTextLength).Validate() {
			return update, apperrors.NewValidationError("bio", "bio is too long")
		}
		update.Bio = req.Bio
	}
	if req.Expertise != nil {
		expertise := strings.TrimSpace(*req.Expertise)
		update.Expertise = &expertise
	}
	if req.Experience != nil {
		if !validation.NewNumericValidation(*req.Experience).WithMin(0).WithMax(validation.MaxExperienceYears).Validate() {
			return update, apperrors.NewValidationError("experience",
				fmt.Sprintf("experience must be between 0 and %d", validation.MaxExperienceYears))
		}
		update.Experience = req.Experience
	}

	return update, nil
}

// UpdateProfile overwrites the provided profile fields of userID
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	update, err := BuildProfileUpdate(req)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, update, now())
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("userID", userID).Msg("Profile updated")
	return user, nil
}

// Stats returns user counts per role
func (s *UserService) Stats(ctx context.Context) (*dto.UserStatsResponse, error) {
	counts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	stats := &dto.UserStatsResponse{
		Students: counts[models.RoleStudent],
		Mentors:  counts[models.RoleMentor],
		Admins:   counts[models.RoleAdmin],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// ListUsers returns one page of users, optionally restricted to a role
func (s *UserService) ListUsers(ctx context.Context, role models.RoleType, page, size int) (*dto.UserListResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	counts, err := s.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	var total int64
	for r, n := range counts {
		if role == "" || r == role {
			total += n
		}
	}

	page, size = helpers.NormalizePage(page, size)
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	users, err := s.userRepo.List(ctx, role, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	resp := &dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(users)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(u))
	}
	return resp, nil
}
