package dto

// CreateFeedbackRequest is the payload for submitting feedback or a
// grievance. Anonymous submissions are allowed; the author is attached only
// when a valid credential accompanies the request.
type CreateFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Type    string `json:"type" binding:"omitempty,oneof=feedback grievance"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// RespondFeedbackRequest is the admin payload for answering a submission
type RespondFeedbackRequest struct {
	Response string `json:"response"`
	Status   string `json:"status" binding:"omitempty,oneof=open in_progress closed"`
}
