package service

import (
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
)

type Services struct {
	UserService UserService
}

func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(repositories.UserRepository, logger),
	}
}
