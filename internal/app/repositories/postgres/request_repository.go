package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"github.com/yigit/mentorbridge/internal/pkg/dberrors"
)

const pendingPairConstraint = "mentorship_requests_pending_pair_key"

var requestColumns = []string{
	"id", "student_id", "mentor_id", "student_name", "mentor_name", "status", "created_at", "decided_at",
}

// MentorshipRequestRepository handles mentorship request database operations
type MentorshipRequestRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRequestRepository creates a new MentorshipRequestRepository
func NewMentorshipRequestRepository(db *pgxpool.Pool) *MentorshipRequestRepository {
	return &MentorshipRequestRepository{db: db}
}

func scanRequest(row pgx.Row) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&req.MentorID,
		&req.StudentName,
		&req.MentorName,
		&req.Status,
		&req.CreatedAt,
		&req.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create inserts a new pending request
func (r *MentorshipRequestRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	query, args, err := squirrel.Insert("mentorship_requests").
		Columns(requestColumns...).
		Values(req.ID, req.StudentID, req.MentorID, req.StudentName, req.MentorName, req.Status, req.CreatedAt, req.DecidedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building request insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, pendingPairConstraint) {
			return apperrors.NewConflictError("a pending request to this mentor already exists")
		}
		return fmt.Errorf("error creating mentorship request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by ID
func (r *MentorshipRequestRepository) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	query, args, err := squirrel.Select(requestColumns...).
		From("mentorship_requests").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building request query: %w", err)
	}

	req, err := scanRequest(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("mentorship request not found")
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}
	return req, nil
}

// ListByStudent returns the requests sent by a student, newest first
func (r *MentorshipRequestRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID})
}

// ListByMentor returns the requests received by a mentor, newest first
func (r *MentorshipRequestRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, squirrel.Eq{"mentor_id": mentorID})
}

// ListApproved returns the approved requests a user takes part in
func (r *MentorshipRequestRepository) ListApproved(ctx context.Context, userID string) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"status": models.RequestStatusApproved},
		squirrel.Or{squirrel.Eq{"student_id": userID}, squirrel.Eq{"mentor_id": userID}},
	})
}

func (r *MentorshipRequestRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.MentorshipRequest, error) {
	query, args, err := squirrel.Select(requestColumns...).
		From("mentorship_requests").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building request list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.MentorshipRequest{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship requests: %w", err)
	}

	return requests, nil
}

// decideQuery builds the conditional UPDATE that only matches a pending row
func decideQuery(id string, status models.RequestStatus, decidedAt time.Time) (string, []interface{}, error) {
	return squirrel.Update("mentorship_requests").
		Set("status", status).
		Set("decided_at", decidedAt).
		Where(squirrel.Eq{"id": id, "status": models.RequestStatusPending}).
		Suffix("RETURNING " + strings.Join(requestColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Decide performs the Pending -> status transition in a single conditional
// UPDATE, so two concurrent deciders cannot both succeed.
func (r *MentorshipRequestRepository) Decide(ctx context.Context, id string, status models.RequestStatus, decidedAt time.Time) (*models.MentorshipRequest, error) {
	query, args, err := decideQuery(id, status, decidedAt)
	if err != nil {
		return nil, fmt.Errorf("error building decision query: %w", err)
	}

	req, err := scanRequest(r.db.QueryRow(ctx, query, args...))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error deciding mentorship request: %w", err)
	}

	// Nothing matched: either the id is unknown or the request was already decided.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: request is already %s", apperrors.ErrInvalidTransition, current.Status)
}

// ExistsApproved reports whether an approved request links a and b
func (r *MentorshipRequestRepository) ExistsApproved(ctx context.Context, a, b string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM mentorship_requests
			WHERE status = $1
			  AND ((student_id = $2 AND mentor_id = $3) OR (student_id = $3 AND mentor_id = $2))
		)`, models.RequestStatusApproved, a, b).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking approved request: %w", err)
	}
	return exists, nil
}
