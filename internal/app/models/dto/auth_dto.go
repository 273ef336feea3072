package dto

import "github.com/halit/campushub/internal/app/models"

// LoginResponse is returned after a successful OAuth callback when the client
// asked for a JSON response instead of a redirect.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
