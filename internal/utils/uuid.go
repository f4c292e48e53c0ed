package utils

import "github.com/google/uuid"

// NewTokenID mints a jti claim value. Version 7 UUIDs are time-ordered, so
// revoked-token rows stay roughly append-ordered; on an entropy failure a
// random v4 is used instead.
func NewTokenID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
