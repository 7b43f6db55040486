package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

type stubPaymentRepo struct {
	payments []*domain.Payment
}

func (r *stubPaymentRepo) Insert(_ context.Context, p *domain.Payment) (string, error) {
	clone := *p
	clone.ID = strconv.Itoa(len(r.payments) + 1)
	r.payments = append(r.payments, &clone)
	return clone.ID, nil
}

func (r *stubPaymentRepo) ListByEmail(_ context.Context, email string) ([]*domain.Payment, error) {
	out := make([]*domain.Payment, 0)
	for _, p := range r.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubSelectionRepo struct {
	rows map[string]*domain.Selection
}

func newStubSelectionRepo() *stubSelectionRepo {
	return &stubSelectionRepo{rows: make(map[string]*domain.Selection)}
}

func (r *stubSelectionRepo) Insert(_ context.Context, sel *domain.Selection) (string, error) {
	id := strconv.Itoa(len(r.rows) + 1)
	clone := *sel
	clone.ID = id
	r.rows[id] = &clone
	return id, nil
}

func (r *stubSelectionRepo) ListByEmail(_ context.Context, email string) ([]*domain.Selection, error) {
	out := make([]*domain.Selection, 0)
	for _, s := range r.rows {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSelectionRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *stubSelectionRepo) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.rows[id]; ok {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

type stubGateway struct {
	lastAmount   int64
	lastCurrency string
	secret       string
	err          error
}

func (g *stubGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.lastAmount = amount
	g.lastCurrency = currency
	if g.err != nil {
		return "", g.err
	}
	return g.secret, nil
}

func TestPaymentService_CreateIntent_AmountInCents(t *testing.T) {
	gw := &stubGateway{secret: "pi_secret"}
	svc := NewPaymentService(&stubPaymentRepo{}, newStubSelectionRepo(), gw, "usd", zerolog.Nop())

	secret, err := svc.CreateIntent(context.Background(), 49.99)
	if err != nil {
		t.Fatalf("create intent failed: %v", err)
	}
	if secret != "pi_secret" {
		t.Fatalf("expected client secret echoed verbatim, got %s", secret)
	}
	if gw.lastAmount != 4999 {
		t.Fatalf("expected amount 4999, got %d", gw.lastAmount)
	}
	if gw.lastCurrency != "usd" {
		t.Fatalf("expected usd, got %s", gw.lastCurrency)
	}
}

func TestPaymentService_CreateIntent_GatewayError(t *testing.T) {
	gw := &stubGateway{err: errors.New("provider down")}
	svc := NewPaymentService(&stubPaymentRepo{}, newStubSelectionRepo(), gw, "usd", zerolog.Nop())

	if _, err := svc.CreateIntent(context.Background(), 10); err == nil {
		t.Fatalf("expected error from gateway")
	}
}

func TestPaymentService_Record_DeletesCartRows(t *testing.T) {
	payments := &stubPaymentRepo{}
	selections := newStubSelectionRepo()
	svc := NewPaymentService(payments, selections, &stubGateway{}, "usd", zerolog.Nop())

	selID, _ := selections.Insert(context.Background(), &domain.Selection{Email: "a@x.com", ClassID: "c1", Price: 25})

	result, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		Email:         "a@x.com",
		Price:         25,
		TransactionID: "tx_1",
		SelectionIDs:  []string{selID},
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if result.InsertedID == "" {
		t.Fatalf("expected inserted id")
	}
	if result.DeletedCount != 1 {
		t.Fatalf("expected one cart row deleted, got %d", result.DeletedCount)
	}
	if len(selections.rows) != 0 {
		t.Fatalf("cart row still present after payment")
	}
	if len(payments.payments) != 1 {
		t.Fatalf("expected one payment row, got %d", len(payments.payments))
	}
	if p := payments.payments[0]; p.Email != "a@x.com" || p.Price != 25 {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestPaymentService_Record_GeneratesTransactionID(t *testing.T) {
	payments := &stubPaymentRepo{}
	svc := NewPaymentService(payments, newStubSelectionRepo(), &stubGateway{}, "usd", zerolog.Nop())

	if _, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		Email: "a@x.com",
		Price: 10,
	}); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if payments.payments[0].TransactionID == "" {
		t.Fatalf("expected generated transaction id")
	}
}

func TestPaymentService_DefaultCurrency(t *testing.T) {
	gw := &stubGateway{secret: "s"}
	svc := NewPaymentService(&stubPaymentRepo{}, newStubSelectionRepo(), gw, "", zerolog.Nop())

	if _, err := svc.CreateIntent(context.Background(), 1); err != nil {
		t.Fatalf("create intent failed: %v", err)
	}
	if gw.lastCurrency != "usd" {
		t.Fatalf("expected usd default, got %s", gw.lastCurrency)
	}
}
