package dto

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// RegisterOutcome distinguishes a fresh registration from a resent
// verification for an existing unverified account.
type RegisterOutcome struct {
	// Resent is true when the account already existed unverified and a new
	// verification mail was dispatched instead of creating a duplicate.
	Resent bool
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResendVerificationRequest asks for a fresh verification mail.
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordRequest starts the password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password-reset flow. The token itself
// travels in the URL path.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// SessionTokens is the issued token pair. Handlers attach these as cookies;
// they are never written into a response body.
type SessionTokens struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}
