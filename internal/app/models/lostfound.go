package models

import (
	"time"
)

// ClaimStatus is the lifecycle state of a claim. Pending claims move to
// approved or rejected; both are terminal.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// LostFoundItem defines the lost-and-found item model based on the
// 'lost_found_items' table. The item row is hard-deleted the moment one claim
// on it is approved; its claims cascade away with it.
type LostFoundItem struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Tag         string    `json:"tag" db:"tag"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	Image       *string   `json:"image,omitempty" db:"image"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Poster identity, resolved on read
	Poster *User `json:"poster,omitempty"`
}

// Claim is a row of the 'lost_found_claims' table. At most one claim per
// (item, claimant) pair, enforced by a unique index.
type Claim struct {
	ID         int64       `json:"id" db:"id"`
	ItemID     int64       `json:"itemId" db:"item_id"`
	ClaimantID int64       `json:"claimantId" db:"claimant_id"`
	Message    string      `json:"message" db:"message"`
	Status     ClaimStatus `json:"status" db:"status"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`

	// Claimant identity, resolved on read
	Claimant *User `json:"claimant,omitempty"`
}
