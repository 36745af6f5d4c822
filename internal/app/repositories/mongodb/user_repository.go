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

// UserRepository stores users in the users collection
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

// Create inserts a new user; the unique email index decides duplicates
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	doc := *user
	if doc.Skills == nil {
		doc.Skills = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if dberrors.IsMongoDuplicateKey(err) {
			return apperrors.ErrDuplicateEmail
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// UpdateProfile overwrites the provided profile fields and returns the updated user
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate, updatedAt time.Time) (*models.User, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := bson.M{"updated_at": updatedAt}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.CareerGoal != nil {
		set["career_goal"] = *update.CareerGoal
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Expertise != nil {
		set["expertise"] = *update.Expertise
	}
	if update.Experience != nil {
		set["experience"] = *update.Experience
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return &user, nil
}

// List returns users ordered by creation time, optionally filtered by role
func (r *UserRepository) List(ctx context.Context, role models.RoleType, offset uint64, limit int) ([]*models.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	var users []*models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

type roleCount struct {
	Role  models.RoleType `bson:"_id"`
	Count int64           `bson:"count"`
}

// CountByRole returns the number of users per role
func (r *UserRepository) CountByRole(ctx context.Context) (map[models.RoleType]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	var rows []roleCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding user counts: %w", err)
	}

	counts := make(map[models.RoleType]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
