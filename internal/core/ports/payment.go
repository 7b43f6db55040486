package ports

import (
	"context"

	"github.com/martialverse/booking-api/internal/core/domain"
)

// RecordPaymentInput carries a completed-payment payload.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	SelectionIDs  []string
	ClassIDs      []string
}

// RecordPaymentResult returns both outcomes of the payment write and the
// cart cleanup. The two writes are sequential, not atomic.
type RecordPaymentResult struct {
	InsertedID   string `json:"inserted_id"`
	DeletedCount int64  `json:"deleted_count"`
}

// PaymentRepository defines persistence operations on the payments collection.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) (string, error)
	// ListByEmail returns a user's payments sorted by date descending.
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}

// PaymentGateway creates payment intents with the external provider.
type PaymentGateway interface {
	// CreateIntent registers an intent for the amount in the currency's
	// smallest unit and returns the provider's client secret verbatim.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// PaymentService defines payment use cases.
type PaymentService interface {
	// CreateIntent converts price to the smallest currency unit (price x 100)
	// and returns the gateway's client secret.
	CreateIntent(ctx context.Context, price float64) (string, error)
	// Record inserts the payment, then deletes the referenced cart rows.
	Record(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}
