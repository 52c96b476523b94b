package store

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// The whole collection lives for the lifetime of the process: it starts
// empty and is lost on shutdown.
//
// A single RWMutex guards the slice, so email-uniqueness checks and ID
// assignment happen atomically with the mutation they protect. IDs are
// assigned as max(existing IDs)+1, which keeps them strictly increasing
// even after deletions punch holes into the sequence.
type userRepository struct {
	logger *logger.Logger

	mu     sync.RWMutex
	users  []models.User
	lastID int64
}

// NewUserRepository constructs an empty in-memory [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		logger: logger,
		users:  make([]models.User, 0),
	}
}

// ListUsers returns a copy of every user record in insertion order.
// The copy keeps callers from observing later mutations through a shared
// backing array.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)

	return users, nil
}

// FindUserByID returns the user with the given ID, or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// CreateUser appends a new user record and returns it with the
// store-assigned ID.
//
// Error handling:
//   - another user already holds the same email (case-insensitive) →
//     [ErrEmailAlreadyExists]; nothing is appended.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, taken := r.emailHolder(user.Email); taken {
		log.Err(ErrEmailAlreadyExists).Str("email", user.Email).Int64("holder_id", id).Msg("email collision on create")
		return models.User{}, ErrEmailAlreadyExists
	}

	user.ID = r.nextID()
	r.users = append(r.users, user)

	return user, nil
}

// UpdateUser mutates the name and email of the record whose ID matches
// user.ID and returns the updated record. The ID itself is immutable.
//
// Error handling:
//   - no record with user.ID → [ErrUserNotFound].
//   - the new email is held by a different record (case-insensitive) →
//     [ErrEmailAlreadyExists]; the record is left untouched.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(user.ID)
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	if holderID, taken := r.emailHolder(user.Email); taken && holderID != user.ID {
		log.Err(ErrEmailAlreadyExists).Str("email", user.Email).Int64("holder_id", holderID).Msg("email collision on update")
		return models.User{}, ErrEmailAlreadyExists
	}

	r.users[idx].Name = user.Name
	r.users[idx].Email = user.Email

	return r.users[idx], nil
}

// DeleteUser removes the record with the given ID, or returns
// [ErrUserNotFound]. The freed ID is never handed out again because the
// ID counter only moves forward.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrUserNotFound
	}

	r.users = append(r.users[:idx], r.users[idx+1:]...)

	return nil
}

// nextID returns max(existing IDs)+1, or 1 for an empty store.
// lastID tracks the high-water mark across deletions so IDs are never
// reassigned. Callers must hold the write lock.
func (r *userRepository) nextID() int64 {
	for _, user := range r.users {
		if user.ID > r.lastID {
			r.lastID = user.ID
		}
	}
	r.lastID++

	return r.lastID
}

// indexOf returns the slice index of the user with the given ID, or -1.
// Callers must hold at least the read lock.
func (r *userRepository) indexOf(id int64) int {
	for i, user := range r.users {
		if user.ID == id {
			return i
		}
	}
	return -1
}

// emailHolder reports whether any record holds the given email under
// case-insensitive comparison, and if so whose. Callers must hold at
// least the read lock.
func (r *userRepository) emailHolder(email string) (int64, bool) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user.ID, true
		}
	}
	return 0, false
}
