package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken = errors.New("INVALID_TOKEN")
)
