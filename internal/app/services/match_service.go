package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/matching"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/repositories"
)

// MatchService ranks mentors and internships against a student's skills
type MatchService struct {
	userRepo       repositories.IUserRepository
	internshipRepo repositories.IInternshipRepository
	logger         zerolog.Logger
}

// NewMatchService creates a new MatchService
func NewMatchService(userRepo repositories.IUserRepository, internshipRepo repositories.IInternshipRepository, logger zerolog.Logger) *MatchService {
	return &MatchService{
		userRepo:       userRepo,
		internshipRepo: internshipRepo,
		logger:         logger,
	}
}

// MatchMentors ranks every mentor by skill similarity to the student, best first
func (s *MatchService) MatchMentors(ctx context.Context, studentID string) ([]dto.MentorMatchResponse, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	mentors, err := s.userRepo.List(ctx, models.RoleMentor, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}

	byID := make(map[string]*models.User, len(mentors))
	candidates := make([]matching.Candidate, 0, len(mentors))
	for _, m := range mentors {
		byID[m.ID] = m
		candidates = append(candidates, matching.Candidate{ID: m.ID, Skills: m.Skills})
	}

	results := matching.Rank(student.Skills, candidates)
	out := make([]dto.MentorMatchResponse, 0, len(results))
	for _, r := range results {
		m := byID[r.ID]
		out = append(out, dto.MentorMatchResponse{
			MentorID:   m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Skills:     nonNil(m.Skills),
			Expertise:  m.Expertise,
			Experience: m.Experience,
			Score:      matching.Round2(r.Score),
		})
	}

	s.logger.Debug().Str("studentID", studentID).Int("mentors", len(out)).Msg("Mentors ranked")
	return out, nil
}

// MatchInternships ranks every internship by skill similarity to the student, best first
func (s *MatchService) MatchInternships(ctx context.Context, studentID string) ([]dto.InternshipMatchResponse, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	internships, err := s.internshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}

	byID := make(map[string]*models.Internship, len(internships))
	candidates := make([]matching.Candidate, 0, len(internships))
	for _, in := range internships {
		byID[in.ID] = in
		candidates = append(candidates, matching.Candidate{ID: in.ID, Skills: in.RequiredSkills})
	}

	results := matching.Rank(student.Skills, candidates)
	out := make([]dto.InternshipMatchResponse, 0, len(results))
	for _, r := range results {
		in := byID[r.ID]
		out = append(out, dto.InternshipMatchResponse{
			InternshipID:   in.ID,
			Title:          in.Title,
			Company:        in.Company,
			RequiredSkills: nonNil(in.RequiredSkills),
			Score:          matching.Round2(r.Score),
		})
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
