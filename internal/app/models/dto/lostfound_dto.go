package dto

// CreateItemRequest is the multipart payload for posting a lost-and-found
// item. An image file may accompany it under the "image" form field.
type CreateItemRequest struct {
	Tag         string `form:"tag" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// SubmitClaimRequest carries the claimant's free-text justification
type SubmitClaimRequest struct {
	Message string `json:"message" binding:"required"`
}

// VerifyClaimRequest carries the poster's decision on a pending claim
type VerifyClaimRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
}
