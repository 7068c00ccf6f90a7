package apperrors

import "errors"

// Common errors
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidDatePoint    = errors.New("invalid date point")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
