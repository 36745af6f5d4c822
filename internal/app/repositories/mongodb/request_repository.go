package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"github.com/yigit/mentorbridge/internal/pkg/dberrors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MentorshipRequestRepository stores requests in the mentorship_requests collection
type MentorshipRequestRepository struct {
	coll *mongo.Collection
}

// NewMentorshipRequestRepository creates a new MentorshipRequestRepository
func NewMentorshipRequestRepository(db *mongo.Database) *MentorshipRequestRepository {
	return &MentorshipRequestRepository{coll: db.Collection(MentorshipRequestsCollection)}
}

// Create inserts a new pending request
func (r *MentorshipRequestRepository) Create(ctx context.Context, req *models.MentorshipRequest) error {
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.NewConflictError("a pending request to this mentor already exists")
		}
		return fmt.Errorf("error creating mentorship request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by ID
func (r *MentorshipRequestRepository) GetByID(ctx context.Context, id string) (*models.MentorshipRequest, error) {
	var req models.MentorshipRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("mentorship request not found")
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}
	return &req, nil
}

func (r *MentorshipRequestRepository) list(ctx context.Context, filter bson.M) ([]*models.MentorshipRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship requests: %w", err)
	}

	requests := []*models.MentorshipRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding mentorship requests: %w", err)
	}
	return requests, nil
}

// ListByStudent returns the requests sent by a student, newest first
func (r *MentorshipRequestRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

// ListByMentor returns the requests received by a mentor, newest first
func (r *MentorshipRequestRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, bson.M{"mentor_id": mentorID})
}

// ListApproved returns the approved requests a user takes part in
func (r *MentorshipRequestRepository) ListApproved(ctx context.Context, userID string) ([]*models.MentorshipRequest, error) {
	return r.list(ctx, bson.M{
		"status": models.RequestStatusApproved,
		"$or":    bson.A{bson.M{"student_id": userID}, bson.M{"mentor_id": userID}},
	})
}

// decideDocuments returns the filter and update of the pending-only transition
func decideDocuments(id string, status models.RequestStatus, decidedAt time.Time) (filter, update bson.M) {
	filter = bson.M{"_id": id, "status": models.RequestStatusPending}
	update = bson.M{"$set": bson.M{"status": status, "decided_at": decidedAt}}
	return filter, update
}

// Decide moves a pending request to status. The filter on the pending status
// makes the update a compare-and-set.
func (r *MentorshipRequestRepository) Decide(ctx context.Context, id string, status models.RequestStatus, decidedAt time.Time) (*models.MentorshipRequest, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter, update := decideDocuments(id, status, decidedAt)

	var req models.MentorshipRequest
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&req)
	if err == nil {
		return &req, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("error deciding mentorship request: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: request is already %s", apperrors.ErrInvalidTransition, current.Status)
}

// ExistsApproved reports whether an approved request links a and b
func (r *MentorshipRequestRepository) ExistsApproved(ctx context.Context, a, b string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"status": models.RequestStatusApproved,
		"$or": bson.A{
			bson.M{"student_id": a, "mentor_id": b},
			bson.M{"student_id": b, "mentor_id": a},
		},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking approved request: %w", err)
	}
	return n > 0, nil
}
