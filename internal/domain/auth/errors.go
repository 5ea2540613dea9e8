package auth

import "errors"

var (
	ErrInvalidRole = errors.New("role must be customer or owner")
	ErrMissingCode = errors.New("authorization code is required")
)
