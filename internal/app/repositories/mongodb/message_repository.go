package mongodb

import (
	"context"
	"fmt"

	"github.com/yigit/mentorbridge/internal/app/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MessageRepository stores the chat log in the messages collection.
// Message ids are UUIDv7 strings, so sorting on _id follows insertion order.
type MessageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(MessagesCollection)}
}

// Create appends a message to the log
func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// ListBetween returns the conversation of a pair, oldest first
func (r *MessageRepository) ListBetween(ctx context.Context, a, b string) ([]*models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "receiver_id": b},
		bson.M{"sender_id": b, "receiver_id": a},
	}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}

	messages := []*models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return messages, nil
}
