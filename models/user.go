package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique user login identifier.
	Username string `json:"username"`

	// Email is the unique address used for login and for PIN delivery.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive.
	Name string `json:"name"`

	// CPF and CNPJ are the Brazilian tax identifiers of the account holder.
	// Both are unique when present.
	CPF  string `json:"cpf,omitempty"`
	CNPJ string `json:"cnpj,omitempty"`

	// Password stores the bcrypt hash of the user's password.
	// Never serialized.
	Password string `json:"-"`

	IsActive    bool `json:"is_active"`
	IsSuperuser bool `json:"is_superuser"`

	// ResetPIN and ResetPINExpiration hold the pending password-reset code.
	// Both are nil while no reset is in flight. Never serialized.
	ResetPIN           *string    `json:"-"`
	ResetPINExpiration *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
