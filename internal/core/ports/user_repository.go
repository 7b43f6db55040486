package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// UpdateResult echoes the store's raw update outcome to the caller.
type UpdateResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

// UserRepository defines persistence operations on the users collection.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Insert stores a new user and returns the generated id.
	Insert(ctx context.Context, user *domain.User) (string, error)
	// SetRole unconditionally sets the role field (last-writer-wins).
	SetRole(ctx context.Context, id, role string) (*UpdateResult, error)
}
