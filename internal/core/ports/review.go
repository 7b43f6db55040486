package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// ReviewRepository reads the reviews collection. Reviews are read-only here.
type ReviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
}
