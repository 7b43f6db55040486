package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

type stubPaymentService struct {
	lastIntent float64
	lastRecord ports.RecordPaymentInput
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	s.lastIntent = price
	return "pi_secret", nil
}

func (s *stubPaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	s.lastRecord = input
	return &ports.RecordPaymentResult{InsertedID: "p1", DeletedCount: int64(len(input.SelectionIDs))}, nil
}

func (s *stubPaymentService) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	return []*domain.Payment{{ID: "p1", Email: email}}, nil
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	e := newTestEcho()
	svc := &stubPaymentService{}
	h := NewPaymentHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(`{"price":49.99}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@x.com")

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if svc.lastIntent != 49.99 {
		t.Fatalf("price not forwarded: %v", svc.lastIntent)
	}
	var out createIntentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ClientSecret != "pi_secret" {
		t.Fatalf("unexpected secret: %q", out.ClientSecret)
	}
}

func TestPaymentHandler_CreateIntentUnauthenticated(t *testing.T) {
	e := newTestEcho()
	h := NewPaymentHandler(&stubPaymentService{})

	req := httptest.NewRequest(http.MethodPost, "/create-payment", strings.NewReader(`{"price":10}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.CreateIntent(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestPaymentHandler_Record(t *testing.T) {
	e := newTestEcho()
	svc := &stubPaymentService{}
	h := NewPaymentHandler(svc)

	body := `{"price":20,"transaction_id":"tx-1","selection_ids":["s1","s2"],"class_ids":["c1","c2"]}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@x.com")

	if err := h.Record(c); err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastRecord.Email != "alice@x.com" {
		t.Fatalf("claim email not injected: %+v", svc.lastRecord)
	}
	var out ports.RecordPaymentResult
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.InsertedID != "p1" || out.DeletedCount != 2 {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestPaymentHandler_RecordMissingSelections(t *testing.T) {
	e := newTestEcho()
	h := NewPaymentHandler(&stubPaymentService{})

	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(`{"price":20}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "alice@x.com")

	err := h.Record(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}
