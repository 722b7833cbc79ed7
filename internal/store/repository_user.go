package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/validators"
	"github.com/MKhiriev/go-sample-api/models"
)

type userRepository struct {
	users *collection[models.User]

	logger *logger.Logger
}

func NewUserRepository(logger *logger.Logger) UserRepository {
	return &userRepository{
		users: newCollection(func(user models.User) int64 {
			return user.ID
		}),
		logger: logger,
	}
}

// Create appends a new user after the case-insensitive uniqueness check over
// username and email. The check and the append run inside one critical
// section of the users collection, so two concurrent creates with the same
// username (or email) can never both succeed.
//
// The payload's password has already been validated by the service layer and
// is discarded here: no credential is ever stored.
func (r *userRepository) Create(_ context.Context, payload models.UserPayload) (models.User, error) {
	user, err := r.users.insertChecked(
		func(existing []models.User) error {
			return validators.CheckUnique(payload, existing)
		},
		func(id int64) models.User {
			return models.User{
				ID:        id,
				Username:  payload.Username,
				Email:     payload.Email,
				FullName:  payload.FullName,
				IsActive:  true,
				CreatedAt: time.Now(),
			}
		},
	)
	if err != nil {
		return models.User{}, err
	}

	r.logger.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

func (r *userRepository) Get(_ context.Context, id int64) (models.User, error) {
	user, ok := r.users.findByID(id)
	if !ok {
		return models.User{}, fmt.Errorf("user id=%d: %w", id, ErrUserNotFound)
	}

	return user, nil
}

// GetByUsername returns the user whose username matches case-insensitively.
// Usernames are unique under that comparison, so the first match is the only
// one.
func (r *userRepository) GetByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := r.users.find(func(user models.User) bool {
		return strings.EqualFold(user.Username, username)
	})
	if !ok {
		return models.User{}, fmt.Errorf("username=%q: %w", username, ErrUserNotFound)
	}

	return user, nil
}

func (r *userRepository) List(_ context.Context, skip, limit int) ([]models.User, error) {
	return r.users.slice(skip, limit), nil
}

func (r *userRepository) All(_ context.Context) ([]models.User, error) {
	return r.users.all(), nil
}
