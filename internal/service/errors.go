package service

import "errors"

// Validation sentinel errors. Their text is what API clients see in the
// 400 response body, so the exact wording (including the trailing period)
// is part of the service contract.
var (
	ErrNameRequired       = errors.New("Name is required.")
	ErrValidEmailRequired = errors.New("A valid email is required.")
)
