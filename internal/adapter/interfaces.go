// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the user-directory server.
//
// The primary abstraction is [DirectoryAdapter], which decouples callers
// (currently the userctl CLI) from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPDirectoryAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_adapter_mock.go -package=mock

// DirectoryAdapter defines transport-agnostic communication with the
// user-directory server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type DirectoryAdapter interface {
	// ListUsers fetches every user in the directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches a single user by ID. Returns a wrapped [ErrNotFound]
	// if the server has no record with that ID.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser submits a new user record and returns it with the
	// server-assigned ID. Returns a wrapped [ErrBadRequest] carrying the
	// server's validation message on rejection.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces the name and email of the record identified by
	// user.ID and returns the updated record.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the record with the given ID.
	DeleteUser(ctx context.Context, id int64) error
}
