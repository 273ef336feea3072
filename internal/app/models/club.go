package models

import (
	"time"
)

// ClubRole is the role a member holds within a club
type ClubRole string

const (
	ClubRolePresident     ClubRole = "President"
	ClubRoleVicePresident ClubRole = "Vice President"
	ClubRoleTreasurer     ClubRole = "Treasurer"
	ClubRoleTechnicalLead ClubRole = "Technical Lead"
	ClubRoleDrafting      ClubRole = "Drafting"
)

// Club defines the club model based on the 'clubs' table
type Club struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations, resolved on read
	Members         []*ClubMember `json:"members,omitempty"`
	Events          []*Event      `json:"events,omitempty"`
	InterestedUsers []*User       `json:"interestedUsers,omitempty"`
}

// ClubMember is a row of the 'club_members' table with the member identity
// resolved. Missing user references are omitted from listings, never an error.
type ClubMember struct {
	ClubID int64    `json:"-" db:"club_id"`
	UserID int64    `json:"userId" db:"user_id"`
	Role   ClubRole `json:"role" db:"role"`
	User   *User    `json:"user,omitempty"`
}
