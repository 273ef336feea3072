package models

import (
	"time"
)

// Notification defines a persisted per-user message based on the
// 'notifications' table. Written as a side effect of other operations;
// delivery guarantee does not extend beyond the insert.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Link      *string   `json:"link,omitempty" db:"link"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
