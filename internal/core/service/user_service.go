package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
	"github.com/martialverse/booking-api/internal/metrics"
)

// UserService implements user registration, listing, role checks and
// role promotion.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates the user unless the email is already registered.
// A duplicate is a benign no-op, not an error.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.RegisterUserResult, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return &ports.RegisterUserResult{AlreadyExists: true}, nil
	}

	id, err := s.repo.Insert(ctx, &domain.User{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("email", input.Email).Msg("user registered")
	return &ports.RegisterUserResult{InsertedID: id}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// HasRole reports whether the stored role for email equals role. An
// unknown email or absent role is simply false.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

// Promote unconditionally sets the role. There is no concurrency check:
// two concurrent promotions race and the store's last write wins.
func (s *UserService) Promote(ctx context.Context, id, role string) (*ports.UpdateResult, error) {
	result, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Str("role", role).Msg("role updated")
	return result, nil
}
