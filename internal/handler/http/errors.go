// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the authentication middleware. Their text is
// the exact body clients receive in the 401 response, so the wording
// (including the trailing period) is part of the API contract.
var (
	// ErrMissingOrInvalidToken is returned when the "Authorization" header
	// is absent, blank, or does not start with the "Bearer " prefix.
	ErrMissingOrInvalidToken = errors.New("Unauthorized: Missing or invalid token.")

	// ErrInvalidToken is returned when the header carries a well-formed
	// bearer credential whose value does not match the boundary secret.
	ErrInvalidToken = errors.New("Unauthorized: Invalid token.")
)

// msgInternalServerError is the fixed body of the outer error boundary's
// 500 response. Unlike handler-local failures it never carries detail.
const msgInternalServerError = "Internal server error."
