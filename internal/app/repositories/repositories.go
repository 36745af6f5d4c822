// Package repositories declares the storage contracts of the application.
// Drivers live in the postgres and mongodb subpackages.
package repositories

import (
	"context"
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
)

// IUserRepository stores user accounts.
// Create returns apperrors.ErrDuplicateEmail when the email is taken; the check is
// enforced by a storage-level unique constraint.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate, updatedAt time.Time) (*models.User, error)
	// List returns users ordered by creation time. An empty role lists everyone.
	List(ctx context.Context, role models.RoleType, offset uint64, limit int) ([]*models.User, error)
	CountByRole(ctx context.Context) (map[models.RoleType]int64, error)
}

// IMentorshipRequestRepository stores mentorship requests.
type IMentorshipRequestRepository interface {
	// Create returns apperrors.ErrConflict when the pair already has a pending request.
	Create(ctx context.Context, req *models.MentorshipRequest) error
	GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.MentorshipRequest, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error)
	// Decide moves a pending request to status. It is a compare-and-set on the
	// pending status: ErrNotFound for unknown ids, ErrInvalidTransition otherwise.
	Decide(ctx context.Context, id string, status models.RequestStatus, decidedAt time.Time) (*models.MentorshipRequest, error)
	// ExistsApproved reports whether an approved request links a and b in either direction.
	ExistsApproved(ctx context.Context, a, b string) (bool, error)
	ListApproved(ctx context.Context, userID string) ([]*models.MentorshipRequest, error)
}

// IMessageRepository is the append-only message log.
type IMessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	// ListBetween returns the messages of a pair in both directions, oldest first.
	ListBetween(ctx context.Context, a, b string) ([]*models.Message, error)
}

// IInternshipRepository stores internship postings.
type IInternshipRepository interface {
	Create(ctx context.Context, in *models.Internship) error
	List(ctx context.Context) ([]*models.Internship, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories groups every repository of one storage driver
type Repositories struct {
	UserRepository              IUserRepository
	MentorshipRequestRepository IMentorshipRequestRepository
	MessageRepository           IMessageRepository
	InternshipRepository        IInternshipRepository
}
