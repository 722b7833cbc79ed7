package service

import (
	"context"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/internal/store"
	"github.com/MKhiriev/go-sample-api/internal/validators"
	"github.com/MKhiriev/go-sample-api/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// CreateUser validates field bounds here and delegates the uniqueness check
// to the repository, which runs it atomically with the append. The password
// is checked for minimum length and then discarded; it never reaches the
// stored record.
func (s *userService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.User{}, err
	}

	return s.userRepository.Create(ctx, payload)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.Get(ctx, id)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.userRepository.GetByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.userRepository.List(ctx, skip, limit)
}
