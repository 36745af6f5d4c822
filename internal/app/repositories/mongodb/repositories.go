// Package mongodb implements the repositories on MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/app/repositories"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names
const (
	UsersCollection              = "users"
	MentorshipRequestsCollection = "mentorship_requests"
	MessagesCollection           = "messages"
	InternshipsCollection        = "internships"
)

// NewRepositories creates all MongoDB repositories
func NewRepositories(db *mongo.Database) *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:              NewUserRepository(db),
		MentorshipRequestRepository: NewMentorshipRequestRepository(db),
		MessageRepository:           NewMessageRepository(db),
		InternshipRepository:        NewInternshipRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on for uniqueness
// and ordering. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_email_key")},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		MentorshipRequestsCollection: {
			{
				Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "mentor_id", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetName("mentorship_requests_pending_pair_key").
					SetPartialFilterExpression(bson.M{"status": models.RequestStatusPending}),
			},
			{Keys: bson.D{{Key: "mentor_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		MessagesCollection: {
			{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}, {Key: "_id", Value: 1}}},
		},
	}

	for name, ims := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, ims); err != nil {
			return fmt.Errorf("error creating indexes on %s: %w", name, err)
		}
	}
	return nil
}
