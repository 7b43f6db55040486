package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// CreateClassInput carries the fields accepted when an instructor lists a class.
type CreateClassInput struct {
	Title           string
	InstructorName  string
	InstructorEmail string
	Image           string
	Price           float64
	Seats           int
}

// ClassService defines class listing and moderation use cases.
type ClassService interface {
	// CreateClass inserts a new class with status pending.
	CreateClass(ctx context.Context, input CreateClassInput) (string, error)
	ListClasses(ctx context.Context) ([]*domain.Class, error)
	ListPopular(ctx context.Context, filter PopularFilter) ([]*domain.Class, error)
	// UpdateCounters sets the seat/booked counters, independent of status.
	UpdateCounters(ctx context.Context, id string, update CounterUpdate) (*UpdateResult, error)
	SetFeedback(ctx context.Context, id, feedback string) (*UpdateResult, error)
	// Transition moves a class to approved or denied. Fails with
	// domain.ErrInvalidTransition unless the class is pending.
	Transition(ctx context.Context, id string, next domain.ClassStatus) (*UpdateResult, error)
}
