package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/mentorbridge/internal/app/careers"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/app/repositories/repotest"
	"github.com/yigit/mentorbridge/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fixture struct {
	repos *repositories.Repositories
	svc   *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := repotest.NewRepositories()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "mentorbridge-test",
	})
	return &fixture{
		repos: repos,
		svc:   NewServices(repos, jwtService, careers.Default(), zerolog.Nop()),
	}
}

func (f *fixture) register(t *testing.T, email, name string, role models.RoleType) *models.User {
	t.Helper()
	u, err := f.svc.AuthService.Register(context.Background(), email, name, "secret123", role)
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return u
}

func (f *fixture) setSkills(t *testing.T, userID string, skills ...string) {
	t.Helper()
	update := models.ProfileUpdate{Skills: &skills}
	if _, err := f.repos.UserRepository.UpdateProfile(context.Background(), userID, update, time.Now()); err != nil {
		t.Fatalf("set skills: %v", err)
	}
}

// approvedPair registers a student and a mentor linked by an approved request.
func (f *fixture) approvedPair(t *testing.T) (student, mentor *models.User) {
	t.Helper()
	ctx := context.Background()
	student = f.register(t, "student@example.com", "Ada Student", models.RoleStudent)
	mentor = f.register(t, "mentor@example.com", "Grace Mentor", models.RoleMentor)

	req, err := f.svc.MentorshipService.Create(ctx, student.ID, mentor.ID)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if _, err := f.svc.MentorshipService.Decide(ctx, req.ID, mentor.ID, models.DecisionApprove); err != nil {
		t.Fatalf("approve: %v", err)
	}
	return student, mentor
}
