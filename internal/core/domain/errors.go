package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Auth errors
var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrWeakPassword   = errors.New("password does not meet strength requirements")
	ErrAuthFailure    = errors.New("invalid credentials or inactive account")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenMismatch  = errors.New("token subject mismatch")
)

// User / job errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidTransition = errors.New("invalid job status transition")
	ErrNotAContractor    = errors.New("assignee is not a contractor")
	ErrNotAClient        = errors.New("poster is not a client")
)
