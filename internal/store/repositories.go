package store

import (
	"github.com/MKhiriev/user-directory/internal/logger"
)

// Repositories aggregates every repository the application owns. The user
// directory currently has a single collection, but the aggregate keeps the
// wiring shape uniform with the rest of the application layers.
type Repositories struct {
	UserRepository UserRepository
}

func NewRepositories(logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(logger),
	}
}
