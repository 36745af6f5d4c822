package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

func TestCreateRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.register(t, "s@example.com", "Ada Student", models.RoleStudent)
	mentor := f.register(t, "m@example.com", "Grace Mentor", models.RoleMentor)
	other := f.register(t, "o@example.com", "Other Student", models.RoleStudent)

	req, err := f.svc.MentorshipService.Create(ctx, student.ID, mentor.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if req.Status != models.RequestStatusPending || req.MentorName != "Grace Mentor" || req.StudentName != "Ada Student" {
		t.Errorf("unexpected request %+v", req)
	}

	if _, err := f.svc.MentorshipService.Create(ctx, student.ID, mentor.ID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate pending: got %v want ErrConflict", err)
	}
	if _, err := f.svc.MentorshipService.Create(ctx, student.ID, other.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("non-mentor target: got %v want ErrNotFound", err)
	}
	if _, err := f.svc.MentorshipService.Create(ctx, student.ID, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("unknown target: got %v want ErrNotFound", err)
	}
	if _, err := f.svc.MentorshipService.Create(ctx, mentor.ID, mentor.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("mentor requesting: got %v want ErrForbidden", err)
	}
}

func TestDecideRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.register(t, "s@example.com", "Ada Student", models.RoleStudent)
	mentor := f.register(t, "m@example.com", "Grace Mentor", models.RoleMentor)
	stranger := f.register(t, "x@example.com", "Other Mentor", models.RoleMentor)

	req, err := f.svc.MentorshipService.Create(ctx, student.ID, mentor.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.svc.MentorshipService.Decide(ctx, "missing", mentor.ID, models.DecisionApprove); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("unknown id: got %v want ErrNotFound", err)
	}
	if _, err := f.svc.MentorshipService.Decide(ctx, req.ID, stranger.ID, models.DecisionApprove); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("foreign mentor: got %v want ErrForbidden", err)
	}

	decided, err := f.svc.MentorshipService.Decide(ctx, req.ID, mentor.ID, models.DecisionReject)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if decided.Status != models.RequestStatusRejected || decided.DecidedAt == nil {
		t.Errorf("unexpected decided request %+v", decided)
	}

	if _, err := f.svc.MentorshipService.Decide(ctx, req.ID, mentor.ID, models.DecisionApprove); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Errorf("second decision: got %v want ErrInvalidTransition", err)
	}

	// A decided request frees the pair for a new one.
	if _, err := f.svc.MentorshipService.Create(ctx, student.ID, mentor.ID); err != nil {
		t.Errorf("re-request after decision: %v", err)
	}
}

func TestConcurrentApproveExactlyOneWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.register(t, "s@example.com", "Ada Student", models.RoleStudent)
	mentor := f.register(t, "m@example.com", "Grace Mentor", models.RoleMentor)

	req, err := f.svc.MentorshipService.Create(ctx, student.ID, mentor.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const deciders = 10
	var wg sync.WaitGroup
	errs := make(chan error, deciders)
	for i := 0; i < deciders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.MentorshipService.Decide(ctx, req.ID, mentor.ID, models.DecisionApprove)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, apperrors.ErrInvalidTransition):
			lost++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if won != 1 || lost != deciders-1 {
		t.Errorf("got %d wins and %d invalid transitions", won, lost)
	}
}

func TestListForRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.register(t, "s@example.com", "Ada Student", models.RoleStudent)
	m1 := f.register(t, "m1@example.com", "Mentor One", models.RoleMentor)
	m2 := f.register(t, "m2@example.com", "Mentor Two", models.RoleMentor)

	for _, m := range []*models.User{m1, m2} {
		if _, err := f.svc.MentorshipService.Create(ctx, student.ID, m.ID); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sent, err := f.svc.MentorshipService.ListFor(ctx, student.ID, models.RoleStudent)
	if err != nil || len(sent) != 2 {
		t.Fatalf("student list: got %d, %v", len(sent), err)
	}
	received, err := f.svc.MentorshipService.ListFor(ctx, m1.ID, models.RoleMentor)
	if err != nil || len(received) != 1 || received[0].StudentID != student.ID {
		t.Fatalf("mentor list: got %+v, %v", received, err)
	}
	if _, err := f.svc.MentorshipService.ListFor(ctx, "admin", models.RoleAdmin); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("admin list: got %v want ErrForbidden", err)
	}
}
