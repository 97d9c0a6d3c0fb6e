package dto

import "github.com/servetisikli/takstore-backend/internal/models"

// UserProfile is the minimal profile returned to the client.
// It never carries the password hash or token fields.
type UserProfile struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewUserProfile maps a user record to its public profile.
func NewUserProfile(user *models.User) *UserProfile {
	return &UserProfile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
