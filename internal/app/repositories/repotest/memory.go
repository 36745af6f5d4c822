// Package repotest provides in-memory repositories for tests. They enforce the
// same uniqueness and compare-and-set rules as the database drivers.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
)

// Store is a process-local backing store shared by the repositories it creates.
type Store struct {
	mu          sync.Mutex
	users       map[string]*models.User
	emails      map[string]string
	requests    map[string]*models.MentorshipRequest
	messages    []*models.Message
	internships []*models.Internship
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		emails:   make(map[string]string),
		requests: make(map[string]*models.MentorshipRequest),
	}
}

// NewRepositories returns repositories backed by a fresh store
func NewRepositories() *repositories.Repositories {
	return NewStore().Repositories()
}

// Repositories returns repositories backed by s
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:              (*userRepo)(s),
		MentorshipRequestRepository: (*requestRepo)(s),
		MessageRepository:           (*messageRepo)(s),
		InternshipRepository:        (*internshipRepo)(s),
	}
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Skills = append([]string{}, u.Skills...)
	return &c
}

func copyRequest(r *models.MentorshipRequest) *models.MentorshipRequest {
	c := *r
	if r.DecidedAt != nil {
		t := *r.DecidedAt
		c.DecidedAt = &t
	}
	return &c
}

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[user.Email]; ok {
		return apperrors.ErrDuplicateEmail
	}
	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("duplicate user id %s", user.ID)
	}
	s.users[user.ID] = copyUser(user)
	s.emails[user.Email] = user.ID
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return copyUser(u), nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	return copyUser(s.users[id]), nil
}

func (r *userRepo) UpdateProfile(_ context.Context, id string, update models.ProfileUpdate, updatedAt time.Time) (*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if !update.IsEmpty() {
		update.Apply(u)
		u.UpdatedAt = updatedAt
	}
	return copyUser(u), nil
}

func (r *userRepo) List(_ context.Context, role models.RoleType, offset uint64, limit int) ([]*models.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []*models.User
	for _, u := range s.users {
		if role == "" || u.RoleType == role {
			all = append(all, copyUser(u))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if offset >= uint64(len(all)) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *userRepo) CountByRole(_ context.Context) (map[models.RoleType]int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[models.RoleType]int64)
	for _, u := range s.users {
		counts[u.RoleType]++
	}
	return counts, nil
}

type requestRepo Store

func (r *requestRepo) Create(_ context.Context, req *models.MentorshipRequest) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.requests {
		if existing.IsPending() && existing.StudentID == req.StudentID && existing.MentorID == req.MentorID {
			return apperrors.NewConflictError("a pending request to this mentor already exists")
		}
	}
	s.requests[req.ID] = copyRequest(req)
	return nil
}

func (r *requestRepo) GetByID(_ context.Context, id string) (*models.MentorshipRequest, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("mentorship request not found")
	}
	return copyRequest(req), nil
}

func (r *requestRepo) filter(keep func(*models.MentorshipRequest) bool) []*models.MentorshipRequest {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*models.MentorshipRequest{}
	for _, req := range s.requests {
		if keep(req) {
			out = append(out, copyRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *requestRepo) ListByStudent(_ context.Context, studentID string) ([]*models.MentorshipRequest, error) {
	return r.filter(func(req *models.MentorshipRequest) bool { return req.StudentID == studentID }), nil
}

func (r *requestRepo) ListByMentor(_ context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	return r.filter(func(req *models.MentorshipRequest) bool { return req.MentorID == mentorID }), nil
}

func (r *requestRepo) ListApproved(_ context.Context, userID string) ([]*models.MentorshipRequest, error) {
	return r.filter(func(req *models.MentorshipRequest) bool { return req.IsApproved() && req.Involves(userID) }), nil
}

func (r *requestRepo) Decide(_ context.Context, id string, status models.RequestStatus, decidedAt time.Time) (*models.MentorshipRequest, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("mentorship request not found")
	}
	if !req.IsPending() {
		return nil, fmt.Errorf("%w: request is already %s", apperrors.ErrInvalidTransition, req.Status)
	}
	req.Status = status
	req.DecidedAt = &decidedAt
	return copyRequest(req), nil
}

func (r *requestRepo) ExistsApproved(_ context.Context, a, b string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.requests {
		if req.IsApproved() && req.Involves(a) && req.Involves(b) && a != b {
			return true, nil
		}
	}
	return false, nil
}

type messageRepo Store

func (r *messageRepo) Create(_ context.Context, msg *models.Message) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *msg
	s.messages = append(s.messages, &c)
	return nil
}

func (r *messageRepo) ListBetween(_ context.Context, a, b string) ([]*models.Message, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*models.Message{}
	for _, m := range s.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

type internshipRepo Store

func (r *internshipRepo) Create(_ context.Context, in *models.Internship) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *in
	c.RequiredSkills = append([]string{}, in.RequiredSkills...)
	s.internships = append(s.internships, &c)
	return nil
}

func (r *internshipRepo) List(_ context.Context) ([]*models.Internship, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Internship, 0, len(s.internships))
	for _, in := range s.internships {
		c := *in
		out = append(out, &c)
	}
	return out, nil
}

func (r *internshipRepo) Count(_ context.Context) (int64, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.internships)), nil
}
