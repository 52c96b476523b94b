package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update, or delete targets a
	// user ID that does not exist in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a create or update would leave
	// two users with case-insensitively equal email addresses. Its text is
	// the message API clients see in the 400 response body.
	ErrEmailAlreadyExists = errors.New("Email already exists.")
)
