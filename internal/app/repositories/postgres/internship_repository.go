package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorbridge/internal/app/models"
)

// InternshipRepository handles internship database operations
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

// Create inserts an internship posting
func (r *InternshipRepository) Create(ctx context.Context, in *models.Internship) error {
	skills := in.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	query, args, err := squirrel.Insert("internships").
		Columns("id", "title", "company", "required_skills", "created_at").
		Values(in.ID, in.Title, in.Company, skills, in.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building internship insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}
	return nil
}

// List returns every internship in creation order
func (r *InternshipRepository) List(ctx context.Context) ([]*models.Internship, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, company, required_skills, created_at
		FROM internships
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	internships := []*models.Internship{}
	for rows.Next() {
		var in models.Internship
		if err := rows.Scan(&in.ID, &in.Title, &in.Company, &in.RequiredSkills, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning internship: %w", err)
		}
		internships = append(internships, &in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating internships: %w", err)
	}
	return internships, nil
}

// Count returns the number of stored internships
func (r *InternshipRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM internships`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return n, nil
}
