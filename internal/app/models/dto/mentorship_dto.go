package dto

import (
	"time"

	"github.com/yigit/mentorbridge/internal/app/models"
)

// CreateMentorshipRequest asks a mentor for mentorship
type CreateMentorshipRequest struct {
	MentorID string `json:"mentorId" binding:"required"`
}

// DecisionRequest carries a mentor's decision on a pending request
type DecisionRequest struct {
	Decision models.Decision `json:"decision" binding:"required,oneof=approve reject" example:"approve" enums:"approve,reject"`
}

// MentorshipRequestResponse represents a mentorship request
type MentorshipRequestResponse struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName" example:"Ada Lovelace"`
	MentorID    string     `json:"mentorId"`
	MentorName  string     `json:"mentorName" example:"Grace Hopper"`
	Status      string     `json:"status" example:"Pending" enums:"Pending,Approved,Rejected"`
	CreatedAt   time.Time  `json:"createdAt"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
}

// NewMentorshipRequestResponse converts a request model into its response
func NewMentorshipRequestResponse(r *models.MentorshipRequest) MentorshipRequestResponse {
	return MentorshipRequestResponse{
		ID:          r.ID,
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		MentorID:    r.MentorID,
		MentorName:  r.MentorName,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		DecidedAt:   r.DecidedAt,
	}
}

// NewMentorshipRequestResponses converts a list of requests
func NewMentorshipRequestResponses(rs []*models.MentorshipRequest) []MentorshipRequestResponse {
	out := make([]MentorshipRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewMentorshipRequestResponse(r))
	}
	return out
}
