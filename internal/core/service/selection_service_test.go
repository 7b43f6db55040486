package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

func TestSelectionService_AddAndList(t *testing.T) {
	repo := newStubSelectionRepo()
	svc := NewSelectionService(repo, zerolog.Nop())

	id, err := svc.Add(context.Background(), ports.AddSelectionInput{Email: "a@x.com", ClassID: "c1", Price: 30})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected inserted id")
	}

	rows, err := svc.ListByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ClassID != "c1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	// another user's cart stays empty
	rows, _ = svc.ListByEmail(context.Background(), "b@x.com")
	if len(rows) != 0 {
		t.Fatalf("expected empty cart for other user")
	}
}

func TestSelectionService_Remove(t *testing.T) {
	repo := newStubSelectionRepo()
	svc := NewSelectionService(repo, zerolog.Nop())

	id, _ := svc.Add(context.Background(), ports.AddSelectionInput{Email: "a@x.com", ClassID: "c1"})

	deleted, err := svc.Remove(context.Background(), id)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected one deleted, got %d", deleted)
	}

	if _, err := svc.Remove(context.Background(), id); !errors.Is(err, domain.ErrSelectionNotFound) {
		t.Fatalf("expected ErrSelectionNotFound, got %v", err)
	}
}
