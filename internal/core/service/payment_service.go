package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
	"github.com/martialverse/booking-api/internal/metrics"
)

// PaymentService implements payment-intent creation and payment recording.
type PaymentService struct {
	repo       ports.PaymentRepository
	selections ports.SelectionRepository
	gateway    ports.PaymentGateway
	currency   string
	logger     zerolog.Logger
}

func NewPaymentService(
	repo ports.PaymentRepository,
	selections ports.SelectionRepository,
	gateway ports.PaymentGateway,
	currency string,
	logger zerolog.Logger,
) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{
		repo:       repo,
		selections: selections,
		gateway:    gateway,
		currency:   currency,
		logger:     logger,
	}
}

// CreateIntent registers a provider intent for price, assuming a
// 2-decimal currency, and returns the client secret verbatim.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	secret, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Float64("price", price).Msg("payment intent failed")
		return "", err
	}
	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return secret, nil
}

// Record inserts the payment document, then deletes the referenced cart
// rows. The two writes are sequential: a crash between them leaves the
// purchased rows in the cart.
func (s *PaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	txID := input.TransactionID
	if txID == "" {
		txID = uuid.NewString()
	}

	id, err := s.repo.Insert(ctx, &domain.Payment{
		Email:         input.Email,
		Price:         input.Price,
		TransactionID: txID,
		SelectionIDs:  input.SelectionIDs,
		ClassIDs:      input.ClassIDs,
		Date:          time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	deleted, err := s.selections.DeleteByIDs(ctx, input.SelectionIDs)
	if err != nil {
		// The payment is already on record; surface the partial failure.
		s.logger.Error().Err(err).Str("payment_id", id).Msg("cart cleanup failed after payment insert")
		return nil, err
	}

	metrics.PaymentsRecordedTotal.Inc()
	s.logger.Info().
		Str("payment_id", id).
		Str("email", input.Email).
		Int64("cart_rows_deleted", deleted).
		Msg("payment recorded")

	return &ports.RecordPaymentResult{InsertedID: id, DeletedCount: deleted}, nil
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}
