package config

import "errors"

var (
	// ErrNoServerAddress is returned by validation when the merged config
	// ends up without a listen address.
	ErrNoServerAddress = errors.New("no server address configured")

	// ErrNoAuthToken is returned by validation when the merged config ends
	// up with an empty boundary secret.
	ErrNoAuthToken = errors.New("no auth token configured")

	// ErrNoClientAddress is returned when the CLI client has no server
	// address to talk to.
	ErrNoClientAddress = errors.New("no client server address configured")
)
