package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/app/services"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"github.com/yigit/mentorbridge/internal/pkg/skills"
	"gopkg.in/yaml.v3"
)

//go:embed internships.yaml
var defaultInternships []byte

// AdminAccount is the account created when no Admin exists
type AdminAccount struct {
	Email    string
	Password string
	Name     string
}

// CreateDefaultData seeds the admin account and the internship catalog.
// Both steps are idempotent; errors of both are joined.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, authService *services.AuthService, admin AdminAccount, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (admin, internships)...")

	var finalErr error
	if err := SeedAdmin(ctx, repos.UserRepository, authService, admin, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding admin account")
		finalErr = errors.Join(finalErr, err)
	}
	if err := SeedInternships(ctx, repos.InternshipRepository, lgr); err != nil {
		lgr.Error().Err(err).Msg("Error seeding internships")
		finalErr = errors.Join(finalErr, err)
	}
	return finalErr
}

// SeedAdmin creates the admin account unless an Admin already exists. A seeder
// that loses the unique email race treats the account as already created.
func SeedAdmin(ctx context.Context, userRepo repositories.IUserRepository, authService *services.AuthService, admin AdminAccount, lgr zerolog.Logger) error {
	counts, err := userRepo.CountByRole(ctx)
	if err != nil {
		return fmt.Errorf("error counting admins: %w", err)
	}
	if counts[models.RoleAdmin] > 0 {
		lgr.Debug().Msg("Admin account already exists, skipping")
		return nil
	}

	user, err := authService.CreateAccount(ctx, admin.Email, admin.Name, admin.Password, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			lgr.Info().Str("email", admin.Email).Msg("Admin email already registered, skipping")
			return nil
		}
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Str("email", user.Email).Msg("Default admin account created")
	return nil
}

type internshipFile struct {
	Internships []*models.Internship `yaml:"internships"`
}

// ParseInternships decodes an internship catalog
func ParseInternships(data []byte) ([]*models.Internship, error) {
	var file internshipFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse internships: %w", err)
	}
	for _, in := range file.Internships {
		if in.Title == "" || in.Company == "" {
			return nil, fmt.Errorf("internship needs a title and a company")
		}
		in.RequiredSkills = skills.Normalize(in.RequiredSkills)
	}
	return file.Internships, nil
}

// SeedInternships loads the built-in internships into an empty collection
func SeedInternships(ctx context.Context, repo repositories.IInternshipRepository, lgr zerolog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting internships: %w", err)
	}
	if n > 0 {
		return nil
	}

	internships, err := ParseInternships(defaultInternships)
	if err != nil {
		return err
	}

	base := time.Now().UTC()
	for i, in := range internships {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("error generating id: %w", err)
		}
		in.ID = id.String()
		in.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if err := repo.Create(ctx, in); err != nil {
			return fmt.Errorf("error creating internship %q: %w", in.Title, err)
		}
	}

	lgr.Info().Int("count", len(internships)).Msg("Default internships created")
	return nil
}
