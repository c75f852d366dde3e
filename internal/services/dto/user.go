package dto

import (
	"time"

	"logistik_backend/internal/models"
)

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=2"`
	LastName    *string `json:"last_name" validate:"omitempty,min=2"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=5"`
}

// UserResponse is a user record without credential fields.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUserResponse strips the password hash and refresh token from a user.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
