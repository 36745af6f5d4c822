package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", dup, "users_email_key", true},
		{"wrapped", fmt.Errorf("insert: %w", dup), "users_email_key", true},
		{"other constraint", dup, "mentorship_requests_pending_pair_key", false},
		{"other code", &pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}, "users_email_key", false},
		{"plain error", errors.New("boom"), "users_email_key", false},
		{"nil", nil, "users_email_key", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}

	if !IsUniqueViolation(dup) || IsUniqueViolation(errors.New("boom")) {
		t.Errorf("IsUniqueViolation() misclassified")
	}
}

func TestIsMongoDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"write exception", mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}, true},
		{"wrapped", fmt.Errorf("insert: %w", mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}), true},
		{"other write error", mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMongoDuplicateKey(tt.err); got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}
