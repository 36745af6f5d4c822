package postgres

import (
	"reflect"
	"testing"
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
)

func TestDecideQueryOnlyMatchesPending(t *testing.T) {
	decidedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := decideQuery("r1", models.RequestStatusApproved, decidedAt)
	if err != nil {
		t.Fatalf("decideQuery() error = %v", err)
	}

	wantQuery := "UPDATE mentorship_requests SET status = $1, decided_at = $2 " +
		"WHERE id = $3 AND status = $4 " +
		"RETURNING id, student_id, mentor_id, student_name, mentor_name, status, created_at, decided_at"
	if query != wantQuery {
		t.Errorf("query:\n got %q\nwant %q", query, wantQuery)
	}

	wantArgs := []interface{}{models.RequestStatusApproved, decidedAt, "r1", models.RequestStatusPending}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args: got %v want %v", args, wantArgs)
	}
}
