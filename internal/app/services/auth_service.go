package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/metrics"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"github.com/yigit/mentorbridge/internal/pkg/auth"
	"github.com/yigit/mentorbridge/internal/pkg/validation"
)

// AuthService handles registration and authentication
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if !validation.NewStringValidation(email).
		WithRequired(true).
		WithMaxLength(254).
		WithPattern(validation.CompiledPatterns.Email).
		Validate() {
		return apperrors.NewValidationError("email", "a valid email address is required")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < validation.PasswordMinLength {
		return apperrors.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}
	if len(password) > validation.PasswordMaxLength {
		return apperrors.NewValidationError("password",
			fmt.Sprintf("password must be at most %d bytes long", validation.PasswordMaxLength))
	}
	return nil
}

func validateName(name string) error {
	if !validation.NewStringValidation(name).
		WithRequired(true).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return apperrors.NewValidationError("name",
			fmt.Sprintf("name must be between %d and %d characters", validation.NameMinLength, validation.NameMaxLength))
	}
	return nil
}

// Register creates a Student or Mentor account.
// The email is unique at storage level; a taken email yields ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, email, name, password string, role models.RoleType) (*models.User, error) {
	if !role.IsSelfRegistrable() {
		return nil, apperrors.NewValidationError("roleType", "role must be Student or Mentor")
	}
	return s.CreateAccount(ctx, email, name, password, role)
}

// CreateAccount creates an account of any role. Admin accounts are only created
// through this entry point by the startup seeder.
func (s *AuthService) CreateAccount(ctx context.Context, email, name, password string, role models.RoleType) (*models.User, error) {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("roleType", "unknown role")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	ts := now()
	user := &models.User{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		RoleType:     role,
		Skills:       []string{},
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("userID", user.ID).Str("role", string(role)).Msg("Account created")
	return user, nil
}

// Authenticate returns the user owning email when password matches.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("error retrieving user: %w", err)
		}
		auth.CheckPasswordOrDummy("", password)
		metrics.LoginFailuresTotal.Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		metrics.LoginFailuresTotal.Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.IssueToken(user)
}

// IssueToken signs an access token for user
func (s *AuthService) IssueToken(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}
