package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/user-directory/models"
)

// UserRepository is the data-access contract for the directory's user
// collection. All implementations must keep two invariants: no two users
// coexist with case-insensitively equal emails, and assigned IDs are
// strictly increasing and never reused after deletion.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
