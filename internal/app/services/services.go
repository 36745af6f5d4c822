// Package services holds the business logic of MentorBridge.
//
// Services defined in this package:
//   - AuthService: registration, authentication and token issuing
//   - UserService: profiles and the admin user views
//   - MatchService: mentor and internship ranking
//   - CareerService: career goals, skill gaps and roadmaps
//   - MentorshipService: the request/approval workflow
//   - ChatService: the message log between approved pairs
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/careers"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/pkg/auth"
)

// now is the service clock; stored timestamps are UTC
var now = func() time.Time {
	return time.Now().UTC()
}

// newID returns a time-ordered UUIDv7 string
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("error generating id: %w", err)
	}
	return id.String(), nil
}

// Services groups every service of the application
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	MatchService      *MatchService
	CareerService     *CareerService
	MentorshipService *MentorshipService
	ChatService       *ChatService
}

// NewServices wires the services over one set of repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, catalog *careers.Catalog, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService, logger.With().Str("service", "auth").Logger()),
		UserService:       NewUserService(repos.UserRepository, logger.With().Str("service", "user").Logger()),
		MatchService:      NewMatchService(repos.UserRepository, repos.InternshipRepository, logger.With().Str("service", "match").Logger()),
		CareerService:     NewCareerService(repos.UserRepository, catalog),
		MentorshipService: NewMentorshipService(repos.MentorshipRequestRepository, repos.UserRepository, logger.With().Str("service", "mentorship").Logger()),
		ChatService:       NewChatService(repos.MessageRepository, repos.MentorshipRequestRepository, logger.With().Str("service", "chat").Logger()),
	}
}
