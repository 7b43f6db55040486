package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// PopularFilter is the narrow, explicitly enumerated query contract for the
// popular listing. Only these keys ever reach the store.
type PopularFilter struct {
	Status          string // optional: filter by moderation status
	InstructorEmail string // optional: filter by instructor
	Limit           int    // max rows (capped by the service)
}

// CounterUpdate carries the seat/booked counters to set. Nil fields are
// left untouched.
type CounterUpdate struct {
	Seats  *int
	Booked *int
}

// ClassRepository defines persistence operations on the classes collection.
type ClassRepository interface {
	Insert(ctx context.Context, class *domain.Class) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	// ListPopular returns classes matching filter sorted by booked count descending.
	ListPopular(ctx context.Context, filter PopularFilter) ([]*domain.Class, error)
	SetCounters(ctx context.Context, id string, update CounterUpdate) (*UpdateResult, error)
	SetFeedback(ctx context.Context, id, feedback string) (*UpdateResult, error)
	SetStatus(ctx context.Context, id string, status domain.ClassStatus) (*UpdateResult, error)
}
