// Package postgres implements the repositories on PostgreSQL through pgx.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/mentorbridge/internal/app/repositories"
)

// NewRepositories creates all PostgreSQL repositories
func NewRepositories(db *pgxpool.Pool) *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:              NewUserRepository(db),
		MentorshipRequestRepository: NewMentorshipRequestRepository(db),
		MessageRepository:           NewMessageRepository(db),
		InternshipRepository:        NewInternshipRepository(db),
	}
}
