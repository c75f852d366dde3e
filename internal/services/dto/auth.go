package dto

type RegisterRequest struct {
	FirstName       string  `json:"first_name" validate:"required,min=2"`
	LastName        string  `json:"last_name" validate:"required,min=2"`
	Email           string  `json:"email" validate:"required,email"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,min=5"`
	Password        string  `json:"password" validate:"required,min=8"`
	ConfirmPassword string  `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyResetTokenRequest struct {
	ResetToken string `json:"reset_token" validate:"required"`
}

type ResetPasswordRequest struct {
	// ResetToken may instead arrive as the 't' query parameter of the
	// emailed link; presence is checked after the handler merges both.
	ResetToken      string `json:"reset_token"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type GenerateTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse is the login payload: the user id plus both credentials.
type LoginResponse struct {
	ID           string `json:"id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type GenerateTokenResponse struct {
	AccessToken string `json:"access_token"`
}
