package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
	"github.com/martialverse/booking-api/internal/metrics"
)

const (
	defaultPopularLimit = 6
	maxPopularLimit     = 50
)

// PopularCache abstracts the read cache for the popular listing (Redis).
// The cache is advisory: a failed read or write never fails the request.
type PopularCache interface {
	Get(ctx context.Context, filter ports.PopularFilter) ([]*domain.Class, bool)
	Set(ctx context.Context, filter ports.PopularFilter, classes []*domain.Class)
	Invalidate(ctx context.Context)
}

// ClassService implements class listing, moderation and counter updates.
type ClassService struct {
	repo   ports.ClassRepository
	cache  PopularCache
	logger zerolog.Logger
}

func NewClassService(repo ports.ClassRepository, cache PopularCache, logger zerolog.Logger) *ClassService {
	return &ClassService{repo: repo, cache: cache, logger: logger}
}

// CreateClass inserts a new listing. Every class starts pending until an
// admin approves or denies it.
func (s *ClassService) CreateClass(ctx context.Context, input ports.CreateClassInput) (string, error) {
	id, err := s.repo.Insert(ctx, &domain.Class{
		Title:           input.Title,
		InstructorName:  input.InstructorName,
		InstructorEmail: input.InstructorEmail,
		Image:           input.Image,
		Price:           input.Price,
		Seats:           input.Seats,
		Status:          domain.StatusPending,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("class_id", id).Str("instructor", input.InstructorEmail).Msg("class created")
	return id, nil
}

func (s *ClassService) ListClasses(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.List(ctx)
}

// ListPopular serves the booked-descending listing, preferring the cache.
func (s *ClassService) ListPopular(ctx context.Context, filter ports.PopularFilter) ([]*domain.Class, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPopularLimit
	}
	if filter.Limit > maxPopularLimit {
		filter.Limit = maxPopularLimit
	}

	if s.cache != nil {
		if classes, ok := s.cache.Get(ctx, filter); ok {
			metrics.PopularCacheTotal.WithLabelValues("hit").Inc()
			return classes, nil
		}
		metrics.PopularCacheTotal.WithLabelValues("miss").Inc()
	}

	classes, err := s.repo.ListPopular(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, filter, classes)
	}
	return classes, nil
}

// UpdateCounters sets the seat/booked counters. Counters are independent of
// moderation status and race under concurrency (last write wins).
func (s *ClassService) UpdateCounters(ctx context.Context, id string, update ports.CounterUpdate) (*ports.UpdateResult, error) {
	result, err := s.repo.SetCounters(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return result, nil
}

func (s *ClassService) SetFeedback(ctx context.Context, id, feedback string) (*ports.UpdateResult, error) {
	return s.repo.SetFeedback(ctx, id, feedback)
}

// Transition moves a class to approved or denied. Both targets are
// terminal, so anything but a pending class rejects the change.
func (s *ClassService) Transition(ctx context.Context, id string, next domain.ClassStatus) (*ports.UpdateResult, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !class.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	result, err := s.repo.SetStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("class_id", id).Str("status", string(next)).Msg("class status changed")
	return result, nil
}

func (s *ClassService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
