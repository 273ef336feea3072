package dto

// CreateClubRequest is the payload for creating a new club
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddMemberRequest is the payload for adding a member to a club
type AddMemberRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=President 'Vice President' Treasurer 'Technical Lead' Drafting"`
}
