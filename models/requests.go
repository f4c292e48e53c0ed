package models

// Request payloads accepted by the HTTP layer. Validation tags are enforced
// by the handler package before any service is invoked.

// SignupRequest creates a new user account.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	CPF      string `json:"cpf,omitempty"`
	CNPJ     string `json:"cnpj,omitempty"`
}

// LoginRequest authenticates an existing account by email.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest starts the PIN-based reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes the PIN-based reset flow.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	PIN         string `json:"pin" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ChangePasswordRequest rotates the password of an authenticated user.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UpdateProfileRequest updates the mutable profile fields of the
// authenticated user. Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// CoordinatesRequest selects a location by geographic coordinates.
type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}
