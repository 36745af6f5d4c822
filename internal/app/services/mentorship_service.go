package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/auth"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/metrics"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

// MentorshipService drives the request/approval workflow
type MentorshipService struct {
	requestRepo repositories.IMentorshipRequestRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(requestRepo repositories.IMentorshipRequestRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) *MentorshipService {
	return &MentorshipService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create opens a Pending request from studentID to mentorID
func (s *MentorshipService) Create(ctx context.Context, studentID, mentorID string) (*models.MentorshipRequest, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.RoleType != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("only students can request mentorship")
	}

	mentor, err := s.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("mentor not found")
		}
		return nil, err
	}
	if mentor.RoleType != models.RoleMentor {
		return nil, apperrors.NewNotFoundError("mentor not found")
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	req := &models.MentorshipRequest{
		ID:          id,
		StudentID:   student.ID,
		MentorID:    mentor.ID,
		StudentName: student.Name,
		MentorName:  mentor.Name,
		Status:      models.RequestStatusPending,
		CreatedAt:   now(),
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Str("requestID", req.ID).Str("studentID", studentID).Str("mentorID", mentorID).Msg("Mentorship request created")
	return req, nil
}

// Decide applies a mentor's decision to a Pending request. Unknown ids yield
// ErrNotFound, a foreign mentor ErrForbidden, a decided request ErrInvalidTransition.
func (s *MentorshipService) Decide(ctx context.Context, requestID, mentorID string, decision models.Decision) (*models.MentorshipRequest, error) {
	status, ok := decision.Status()
	if !ok {
		return nil, apperrors.NewValidationError("decision", "decision must be approve or reject")
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidateRequestMentor(req, mentorID); err != nil {
		return nil, err
	}

	decided, err := s.requestRepo.Decide(ctx, requestID, status, now())
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error deciding request: %w", err)
	}

	metrics.RequestDecisionsTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("requestID", requestID).Str("status", string(status)).Msg("Mentorship request decided")
	return decided, nil
}

// ListForStudent returns the requests a student has sent, newest first
func (s *MentorshipService) ListForStudent(ctx context.Context, studentID string) ([]*models.MentorshipRequest, error) {
	return s.requestRepo.ListByStudent(ctx, studentID)
}

// ListForMentor returns the requests a mentor has received, newest first
func (s *MentorshipService) ListForMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	return s.requestRepo.ListByMentor(ctx, mentorID)
}

// ListFor returns the requests of userID seen from their role
func (s *MentorshipService) ListFor(ctx context.Context, userID string, role models.RoleType) ([]*models.MentorshipRequest, error) {
	switch role {
	case models.RoleStudent:
		return s.ListForStudent(ctx, userID)
	case models.RoleMentor:
		return s.ListForMentor(ctx, userID)
	}
	return nil, apperrors.NewForbiddenError("only students and mentors have mentorship requests")
}
