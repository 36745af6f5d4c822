package mongodb

import (
	"reflect"
	"testing"
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestDecideDocumentsOnlyMatchPending(t *testing.T) {
	decidedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	filter, update := decideDocuments("r1", models.RequestStatusRejected, decidedAt)

	wantFilter := bson.M{"_id": "r1", "status": models.RequestStatusPending}
	if !reflect.DeepEqual(filter, wantFilter) {
		t.Errorf("filter: got %v want %v", filter, wantFilter)
	}
	wantUpdate := bson.M{"$set": bson.M{"status": models.RequestStatusRejected, "decided_at": decidedAt}}
	if !reflect.DeepEqual(update, wantUpdate) {
		t.Errorf("update: got %v want %v", update, wantUpdate)
	}
}
