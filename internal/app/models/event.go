package models

import (
	"time"
)

// EventStatus is declared for the event lifecycle but not state-machine
// enforced anywhere.
type EventStatus string

const (
	EventUpcoming  EventStatus = "Upcoming"
	EventOngoing   EventStatus = "Ongoing"
	EventCompleted EventStatus = "Completed"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64       `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Date        time.Time   `json:"date" db:"date"`
	Location    string      `json:"location" db:"location"`
	Image       *string     `json:"image,omitempty" db:"image"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedBy   *int64      `json:"createdBy,omitempty" db:"created_by"`
	ClubID      int64       `json:"clubId" db:"club_id"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`

	// Relations, resolved on read
	Club            *Club   `json:"club,omitempty"`
	Creator         *User   `json:"creator,omitempty"`
	RegisteredUsers []*User `json:"registeredUsers,omitempty"`
}
