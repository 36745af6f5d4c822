package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

func TestCareerGapForStoredGoal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.register(t, "ada@example.com", "Ada Lovelace", models.RoleStudent)
	goal := "Data Scientist"
	skills := []string{"Python", "SQL"}
	if _, err := f.repos.UserRepository.UpdateProfile(ctx, u.ID, models.ProfileUpdate{CareerGoal: &goal, Skills: &skills}, now()); err != nil {
		t.Fatalf("update: %v", err)
	}

	gap, err := f.svc.CareerService.Gap(ctx, u.ID)
	if err != nil {
		t.Fatalf("gap: %v", err)
	}
	if gap.CompletionPct != 40 {
		t.Errorf("completion: got %d want 40", gap.CompletionPct)
	}
	if want := []string{"Machine Learning", "Statistics", "Deep Learning"}; !reflect.DeepEqual(gap.Missing, want) {
		t.Errorf("missing: got %v want %v", gap.Missing, want)
	}

	roadmap, err := f.svc.CareerService.Roadmap(ctx, u.ID)
	if err != nil {
		t.Fatalf("roadmap: %v", err)
	}
	if roadmap.Goal != goal || len(roadmap.Steps) != 5 || roadmap.Steps[0].Number != 1 || roadmap.Steps[0].Skill != "Python" {
		t.Errorf("unexpected roadmap %+v", roadmap)
	}
}

func TestCareerGapWithoutGoal(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "ada@example.com", "Ada Lovelace", models.RoleStudent)

	if _, err := f.svc.CareerService.Gap(context.Background(), u.ID); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Errorf("got %v want ErrNotConfigured", err)
	}
	if _, err := f.svc.CareerService.Roadmap(context.Background(), u.ID); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Errorf("got %v want ErrNotConfigured", err)
	}
}

func TestCareerGoals(t *testing.T) {
	f := newFixture(t)
	goals := f.svc.CareerService.Goals()
	if len(goals) != 3 {
		t.Fatalf("got %d goals want 3", len(goals))
	}
	if goals[0].Goal != "Data Scientist" {
		t.Errorf("first goal: got %s", goals[0].Goal)
	}
}
