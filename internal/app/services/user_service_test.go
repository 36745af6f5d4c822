package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/models/dto"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateProfileOverwritesOnlyProvidedFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "ada@example.com", "Ada Lovelace", models.RoleStudent)

	_, err := f.svc.UserService.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{
		Skills:     strPtr(" Python, SQL ,, Python "),
		CareerGoal: strPtr("Data Scientist"),
		Bio:        strPtr("hello"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := f.svc.UserService.UpdateProfile(ctx, u.ID, &dto.UpdateProfileRequest{Experience: intPtr(3)})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	if want := []string{"Python", "SQL"}; !reflect.DeepEqual(got.Skills, want) {
		t.Errorf("skills: got %v want %v", got.Skills, want)
	}
	if got.CareerGoal != "Data Scientist" || got.Bio != "hello" || got.Experience != 3 {
		t.Errorf("unexpected profile %+v", got)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.UserService.UpdateProfile(context.Background(), "missing", &dto.UpdateProfileRequest{Bio: strPtr("x")})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("got %v want ErrNotFound", err)
	}
}

func TestUpdateProfileRejectsNegativeExperience(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "grace@example.com", "Grace Hopper", models.RoleMentor)
	_, err := f.svc.UserService.UpdateProfile(context.Background(), u.ID, &dto.UpdateProfileRequest{Experience: intPtr(-1)})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("got %v want ErrValidationFailed", err)
	}
}

func TestStatsAndListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "s1@example.com", "Student One", models.RoleStudent)
	f.register(t, "s2@example.com", "Student Two", models.RoleStudent)
	f.register(t, "m1@example.com", "Mentor One", models.RoleMentor)

	stats, err := f.svc.UserService.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Students != 2 || stats.Mentors != 1 || stats.Admins != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}

	page, err := f.svc.UserService.ListUsers(ctx, models.RoleStudent, 1, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Users) != 1 || page.Pagination.TotalItems != 2 || page.Pagination.TotalPages != 2 {
		t.Errorf("unexpected page %+v", page)
	}

	if _, err := f.svc.UserService.ListUsers(ctx, "Guest", 1, 10); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("unknown role: got %v want ErrValidationFailed", err)
	}
}
