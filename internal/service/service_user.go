package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/store"
	"github.com/MKhiriev/user-directory/models"
)

// userService is the concrete implementation of [UserService].
// It applies the directory's validation rules and delegates all state
// to the underlying [store.UserRepository].
type userService struct {
	// userRepository is the data-access layer used to read and mutate users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository.
//
// The returned service is safe for concurrent use; all state beyond the
// repository itself is read-only after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every user in store order.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// GetUser returns the user with the given ID.
//
// Returns [store.ErrUserNotFound] if no such record exists.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// CreateUser validates the incoming record and appends it to the store.
//
// Returns the created user (with a store-assigned ID) or:
//   - [ErrNameRequired] if Name is empty or whitespace-only.
//   - [ErrValidEmailRequired] if Email is empty or lacks an "@".
//   - [store.ErrEmailAlreadyExists] if another user already holds the
//     email under case-insensitive comparison.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUser(user); err != nil {
		log.Err(err).Any("user", user).Msg("invalid user data provided")
		return models.User{}, err
	}

	return s.userRepository.CreateUser(ctx, user)
}

// UpdateUser mutates the name and email of an existing record.
//
// The existence check runs before field validation, so an unknown ID is
// reported as [store.ErrUserNotFound] even when the payload is also
// invalid. On success the updated record is returned.
//
// Returns:
//   - [store.ErrUserNotFound] if no record with user.ID exists.
//   - [ErrNameRequired] / [ErrValidEmailRequired] on validation failure.
//   - [store.ErrEmailAlreadyExists] if the new email belongs to a
//     different record.
func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, user.ID); err != nil {
		return models.User{}, err
	}

	if err := validateUser(user); err != nil {
		log.Err(err).Any("user", user).Msg("invalid user data provided")
		return models.User{}, err
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// DeleteUser removes the record with the given ID.
//
// Returns [store.ErrUserNotFound] if no such record exists.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepository.DeleteUser(ctx, id)
}

// validateUser checks the field-level rules shared by create and update:
// a non-blank name and an email that contains an "@". Uniqueness is not
// checked here; the repository enforces it under its own lock.
func validateUser(user models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return ErrNameRequired
	}

	if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
		return ErrValidEmailRequired
	}

	return nil
}
