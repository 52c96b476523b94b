package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

// UserService is the application-level contract for the user directory.
// It owns the field validation rules and delegates storage concerns to
// [store.UserRepository]. Every failure is reported through a sentinel
// error so the transport layer can translate it in one place.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
