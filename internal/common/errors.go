// Package common holds sentinel errors shared by the repositories, services
// and HTTP handlers. Callers match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")

	// Input errors.
	ErrValidation = errors.New("validation error")
)
