package models

import "time"

// RequestStatus is the lifecycle state of a mentorship request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// Decision is a mentor's answer to a pending request
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Status returns the terminal status a decision leads to.
func (d Decision) Status() (RequestStatus, bool) {
	switch d {
	case DecisionApprove:
		return RequestStatusApproved, true
	case DecisionReject:
		return RequestStatusRejected, true
	}
	return "", false
}

// MentorshipRequest is a request from a student to a mentor.
type MentorshipRequest struct {
	ID          string        `db:"id" bson:"_id" json:"id"`
	StudentID   string        `db:"student_id" bson:"student_id" json:"studentId"`
	MentorID    string        `db:"mentor_id" bson:"mentor_id" json:"mentorId"`
	StudentName string        `db:"student_name" bson:"student_name" json:"studentName"`
	MentorName  string        `db:"mentor_name" bson:"mentor_name" json:"mentorName"`
	Status      RequestStatus `db:"status" bson:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" bson:"created_at" json:"createdAt"`
	DecidedAt   *time.Time    `db:"decided_at" bson:"decided_at,omitempty" json:"decidedAt,omitempty"`
}

// IsPending returns true if the request has not been decided yet
func (r *MentorshipRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsApproved returns true if the mentor approved the request
func (r *MentorshipRequest) IsApproved() bool {
	return r.Status == RequestStatusApproved
}

// Involves reports whether userID is the student or the mentor of the request.
func (r *MentorshipRequest) Involves(userID string) bool {
	return r.StudentID == userID || r.MentorID == userID
}

// Partner returns the other participant of the request.
func (r *MentorshipRequest) Partner(userID string) (id, name string) {
	if r.StudentID == userID {
		return r.MentorID, r.MentorName
	}
	return r.StudentID, r.StudentName
}
