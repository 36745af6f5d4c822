package services

import (
	"context"

	"github.com/yigit/mentorbridge/internal/app/careers"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/repositories"
)

// CareerService evaluates a user's skills against the career catalog
type CareerService struct {
	userRepo repositories.IUserRepository
	catalog  *careers.Catalog
}

// NewCareerService creates a new CareerService
func NewCareerService(userRepo repositories.IUserRepository, catalog *careers.Catalog) *CareerService {
	return &CareerService{
		userRepo: userRepo,
		catalog:  catalog,
	}
}

// Goals lists the configured career goals
func (s *CareerService) Goals() []dto.CareerProfileResponse {
	profiles := s.catalog.Profiles()
	out := make([]dto.CareerProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.CareerProfileResponse{Goal: p.Goal, Skills: p.Skills})
	}
	return out
}

// Gap evaluates the user's stored skills against their stored career goal
func (s *CareerService) Gap(ctx context.Context, userID string) (*careers.Gap, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.catalog.Gap(user.Skills, user.CareerGoal)
}

// Roadmap returns the learning steps of the user's career goal
func (s *CareerService) Roadmap(ctx context.Context, userID string) (*dto.RoadmapResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	steps, err := s.catalog.Roadmap(user.CareerGoal)
	if err != nil {
		return nil, err
	}
	return &dto.RoadmapResponse{Goal: user.CareerGoal, Steps: steps}, nil
}
