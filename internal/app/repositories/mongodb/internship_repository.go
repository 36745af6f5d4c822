package mongodb

import (
	"context"
	"fmt"

	"github.com/yigit/mentorbridge/internal/app/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InternshipRepository stores postings in the internships collection
type InternshipRepository struct {
	coll *mongo.Collection
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *mongo.Database) *InternshipRepository {
	return &InternshipRepository{coll: db.Collection(InternshipsCollection)}
}

// Create inserts an internship posting
func (r *InternshipRepository) Create(ctx context.Context, in *models.Internship) error {
	if _, err := r.coll.InsertOne(ctx, in); err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}
	return nil
}

// List returns every internship in creation order
func (r *InternshipRepository) List(ctx context.Context) ([]*models.Internship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}

	internships := []*models.Internship{}
	if err := cursor.All(ctx, &internships); err != nil {
		return nil, fmt.Errorf("error decoding internships: %w", err)
	}
	return internships, nil
}

// Count returns the number of stored internships
func (r *InternshipRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return n, nil
}
