package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

// SelectionService implements cart operations.
type SelectionService struct {
	repo   ports.SelectionRepository
	logger zerolog.Logger
}

func NewSelectionService(repo ports.SelectionRepository, logger zerolog.Logger) *SelectionService {
	return &SelectionService{repo: repo, logger: logger}
}

func (s *SelectionService) Add(ctx context.Context, input ports.AddSelectionInput) (string, error) {
	return s.repo.Insert(ctx, &domain.Selection{
		Email:      input.Email,
		ClassID:    input.ClassID,
		ClassTitle: input.ClassTitle,
		Image:      input.Image,
		Price:      input.Price,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *SelectionService) ListByEmail(ctx context.Context, email string) ([]*domain.Selection, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *SelectionService) Remove(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrSelectionNotFound
	}
	return deleted, nil
}
