package service

import "errors"

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidUsername     = errors.New("invalid username. Must be 3-50 chars, alphanumeric")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("unauthorized")
)
