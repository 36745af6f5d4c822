package models

import "time"

// Message is one chat line between an approved pair. Messages are never updated.
type Message struct {
	ID         string    `db:"id" bson:"_id" json:"id"`
	SenderID   string    `db:"sender_id" bson:"sender_id" json:"senderId"`
	ReceiverID string    `db:"receiver_id" bson:"receiver_id" json:"receiverId"`
	Body       string    `db:"body" bson:"body" json:"body"`
	CreatedAt  time.Time `db:"created_at" bson:"created_at" json:"createdAt"`
}
