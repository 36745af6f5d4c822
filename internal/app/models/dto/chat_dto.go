package dto

import (
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
)

// SendMessageRequest represents a chat message to send
type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=4000" example:"Hi, could we meet on Friday?"`
}

// MessageResponse represents a chat message
type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Body       string    `json:"body" example:"Hi, could we meet on Friday?"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewMessageResponse converts a message model into its response
func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}

// NewMessageResponses converts a conversation
func NewMessageResponses(ms []*models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMessageResponse(m))
	}
	return out
}

// ContactResponse is an approved chat partner
type ContactResponse struct {
	UserID    string `json:"userId"`
	Name      string `json:"name" example:"Grace Hopper"`
	RequestID string `json:"requestId"`
}
