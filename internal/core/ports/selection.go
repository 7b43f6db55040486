package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// AddSelectionInput carries the fields accepted when a user carts a class.
type AddSelectionInput struct {
	Email      string
	ClassID    string
	ClassTitle string
	Image      string
	Price      float64
}

// SelectionRepository defines persistence operations on the cart collection.
type SelectionRepository interface {
	Insert(ctx context.Context, sel *domain.Selection) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Selection, error)
	// Delete removes the row with the given id and returns the deleted count.
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteByIDs removes every row whose id is in ids and returns the count.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// SelectionService defines cart use cases. Rows are always scoped to the
// authenticated caller's email.
type SelectionService interface {
	Add(ctx context.Context, input AddSelectionInput) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Selection, error)
	Remove(ctx context.Context, id string) (int64, error)
}
