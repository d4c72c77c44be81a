// Sentinel errors shared between the user service and the HTTP handlers.
// Handlers match these with errors.Is to pick a status code; anything else
// coming out of the service is a store failure and maps to 500.
package service

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")

	// Validation errors.
	ErrWeakPassword        = errors.New("password must be at least 8 characters, include one uppercase letter and one number")
	ErrOldPasswordRequired = errors.New("old password required for update")

	// Auth errors.
	ErrOldPasswordIncorrect  = errors.New("old password incorrect")
	ErrSuperUserUnauthorized = errors.New("unauthorized superUser credentials")
)
