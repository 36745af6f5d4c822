package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorbridge/internal/app/models"
	"github.com/yigit/mentorbridge/internal/pkg/apperrors"
	"github.com/yigit/mentorbridge/internal/pkg/dberrors"
)

const usersEmailConstraint = "users_email_key"

const userColumns = `id, email, name, password_hash, role, skills, career_goal, expertise, experience, bio, created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.RoleType, &user.Skills,
		&user.CareerGoal, &user.Expertise, &user.Experience, &user.Bio, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user; the unique email constraint decides duplicates
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, skills, career_goal, expertise, experience, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.RoleType, skills,
		user.CareerGoal, user.Expertise, user.Experience, user.Bio, user.CreatedAt, user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersEmailConstraint) {
			return apperrors.ErrDuplicateEmail
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// UpdateProfile overwrites the provided profile fields and returns the updated user
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate, updatedAt time.Time) (*models.User, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := map[string]interface{}{"updated_at": updatedAt}
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

	query, args, err := squirrel.Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building profile update query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return user, nil
}

// List returns users ordered by creation time, optionally filtered by role
func (r *UserRepository) List(ctx context.Context, role models.RoleType, offset uint64, limit int) ([]*models.User, error) {
	qb := squirrel.Select(userColumns).
		From("users").
		OrderBy("created_at ASC", "id ASC").
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)
	if role != "" {
		qb = qb.Where(squirrel.Eq{"role": role})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// CountByRole returns the number of users per role
func (r *UserRepository) CountByRole(ctx context.Context) (map[models.RoleType]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.RoleType]int64, len(models.Roles))
	for rows.Next() {
		var role models.RoleType
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("error scanning user count: %w", err)
		}
		counts[role] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user counts: %w", err)
	}

	return counts, nil
}
