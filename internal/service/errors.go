package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidPin is returned when the supplied reset PIN does not match
	// the pending one, or no reset is pending.
	ErrInvalidPin = errors.New("invalid reset PIN")

	// ErrExpiredPin is returned when the supplied PIN matches but its
	// expiration time has passed.
	ErrExpiredPin = errors.New("reset PIN is expired")
)
