package models

import (
	"time"
)

// FeedbackType distinguishes plain feedback from grievances
type FeedbackType string

const (
	TypeFeedback  FeedbackType = "feedback"
	TypeGrievance FeedbackType = "grievance"
)

// FeedbackStatus is the intake state of a submission
type FeedbackStatus string

const (
	FeedbackOpen       FeedbackStatus = "open"
	FeedbackInProgress FeedbackStatus = "in_progress"
	FeedbackClosed     FeedbackStatus = "closed"
)

// Feedback defines the feedback/grievance model based on the 'feedback' table.
// UserID is nil for anonymous submissions.
type Feedback struct {
	ID        int64          `json:"id" db:"id"`
	UserID    *int64         `json:"userId,omitempty" db:"user_id"`
	Name      string         `json:"name" db:"name"`
	Email     string         `json:"email" db:"email"`
	Type      FeedbackType   `json:"type" db:"type"`
	Subject   string         `json:"subject" db:"subject"`
	Message   string         `json:"message" db:"message"`
	Status    FeedbackStatus `json:"status" db:"status"`
	Response  *string        `json:"response,omitempty" db:"response"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`

	// Author identity, resolved on read when not anonymous
	Author *User `json:"author,omitempty"`
}
