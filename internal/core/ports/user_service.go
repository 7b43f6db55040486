package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// RegisterUserInput carries the fields accepted on user creation.
type RegisterUserInput struct {
	Email    string
	Name     string
	PhotoURL string
}

// RegisterUserResult reports the outcome of a create-or-ignore registration.
type RegisterUserResult struct {
	InsertedID string
	// AlreadyExists is true when the email was already registered; the
	// call is then a no-op and InsertedID is empty.
	AlreadyExists bool
}

// UserService defines user management use cases.
type UserService interface {
	// Register creates the user unless the email already exists.
	Register(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// HasRole reports whether the stored role for email equals role.
	// A missing user or absent role yields false, not an error.
	HasRole(ctx context.Context, email, role string) (bool, error)
	// Promote sets the role for the given user id and echoes the store's
	// matched/modified counts.
	Promote(ctx context.Context, id, role string) (*UpdateResult, error)
}
