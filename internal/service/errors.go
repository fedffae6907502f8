package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; sign-in must not reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
