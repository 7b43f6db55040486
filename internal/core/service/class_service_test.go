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

type stubClassRepo struct {
	classes map[string]*domain.Class
	nextID  int

	lastPopularFilter ports.PopularFilter
}

func newStubClassRepo() *stubClassRepo {
	return &stubClassRepo{classes: make(map[string]*domain.Class)}
}

func (r *stubClassRepo) Insert(_ context.Context, class *domain.Class) (string, error) {
	r.nextID++
	id := strconv.Itoa(r.nextID)
	clone := *class
	clone.ID = id
	r.classes[id] = &clone
	return id, nil
}

func (r *stubClassRepo) FindByID(_ context.Context, id string) (*domain.Class, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClassRepo) List(_ context.Context) ([]*domain.Class, error) {
	out := make([]*domain.Class, 0, len(r.classes))
	for _, c := range r.classes {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClassRepo) ListPopular(_ context.Context, filter ports.PopularFilter) ([]*domain.Class, error) {
	r.lastPopularFilter = filter
	return nil, nil
}

func (r *stubClassRepo) SetCounters(_ context.Context, id string, update ports.CounterUpdate) (*ports.UpdateResult, error) {
	c, ok := r.classes[id]
	if !ok {
		return &ports.UpdateResult{}, nil
	}
	if update.Seats != nil {
		c.Seats = *update.Seats
	}
	if update.Booked != nil {
		c.Booked = *update.Booked
	}
	return &ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *stubClassRepo) SetFeedback(_ context.Context, id, feedback string) (*ports.UpdateResult, error) {
	c, ok := r.classes[id]
	if !ok {
		return &ports.UpdateResult{}, nil
	}
	c.Feedback = feedback
	return &ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *stubClassRepo) SetStatus(_ context.Context, id string, status domain.ClassStatus) (*ports.UpdateResult, error) {
	c, ok := r.classes[id]
	if !ok {
		return &ports.UpdateResult{}, nil
	}
	c.Status = status
	return &ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

type stubCache struct {
	store       map[string][]*domain.Class
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{store: make(map[string][]*domain.Class)}
}

func (c *stubCache) cacheKey(f ports.PopularFilter) string {
	return f.Status + "|" + f.InstructorEmail + "|" + strconv.Itoa(f.Limit)
}

func (c *stubCache) Get(_ context.Context, f ports.PopularFilter) ([]*domain.Class, bool) {
	v, ok := c.store[c.cacheKey(f)]
	return v, ok
}

func (c *stubCache) Set(_ context.Context, f ports.PopularFilter, classes []*domain.Class) {
	c.store[c.cacheKey(f)] = classes
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.store = make(map[string][]*domain.Class)
	c.invalidated++
}

func TestClassService_CreateClass_StartsPending(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, nil, zerolog.Nop())

	id, err := svc.CreateClass(context.Background(), ports.CreateClassInput{
		Title:           "Karate basics",
		InstructorName:  "Kim",
		InstructorEmail: "kim@x.com",
		Seats:           20,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if repo.classes[id].Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", repo.classes[id].Status)
	}
}

func TestClassService_Transition_PendingToApproved(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, nil, zerolog.Nop())

	id, _ := repo.Insert(context.Background(), &domain.Class{Title: "Judo", Status: domain.StatusPending, Seats: 10})

	result, err := svc.Transition(context.Background(), id, domain.StatusApproved)
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if result.Modified != 1 {
		t.Fatalf("expected one modified, got %d", result.Modified)
	}

	c, _ := repo.FindByID(context.Background(), id)
	if c.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", c.Status)
	}
	if c.Title != "Judo" || c.Seats != 10 {
		t.Fatalf("other fields changed: %+v", c)
	}
}

func TestClassService_Transition_TerminalStates(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, nil, zerolog.Nop())

	id, _ := repo.Insert(context.Background(), &domain.Class{Status: domain.StatusApproved})

	if _, err := svc.Transition(context.Background(), id, domain.StatusDenied); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.Transition(context.Background(), id, domain.StatusApproved); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on re-approval, got %v", err)
	}
}

func TestClassService_Transition_NotFound(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, nil, zerolog.Nop())

	if _, err := svc.Transition(context.Background(), "ghost", domain.StatusApproved); !errors.Is(err, domain.ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestClassService_ListPopular_LimitBounds(t *testing.T) {
	repo := newStubClassRepo()
	svc := NewClassService(repo, nil, zerolog.Nop())

	if _, err := svc.ListPopular(context.Background(), ports.PopularFilter{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastPopularFilter.Limit != defaultPopularLimit {
		t.Fatalf("expected default limit %d, got %d", defaultPopularLimit, repo.lastPopularFilter.Limit)
	}

	if _, err := svc.ListPopular(context.Background(), ports.PopularFilter{Limit: 9999}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastPopularFilter.Limit != maxPopularLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPopularLimit, repo.lastPopularFilter.Limit)
	}
}

func TestClassService_ListPopular_UsesCache(t *testing.T) {
	repo := newStubClassRepo()
	cache := newStubCache()
	svc := NewClassService(repo, cache, zerolog.Nop())

	cached := []*domain.Class{{ID: "1", Title: "Aikido"}}
	cache.Set(context.Background(), ports.PopularFilter{Limit: defaultPopularLimit}, cached)

	classes, err := svc.ListPopular(context.Background(), ports.PopularFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(classes) != 1 || classes[0].Title != "Aikido" {
		t.Fatalf("expected cached result, got %+v", classes)
	}
	if repo.lastPopularFilter.Limit != 0 {
		t.Fatalf("repo should not have been queried on cache hit")
	}
}

func TestClassService_Mutations_InvalidateCache(t *testing.T) {
	repo := newStubClassRepo()
	cache := newStubCache()
	svc := NewClassService(repo, cache, zerolog.Nop())

	id, _ := repo.Insert(context.Background(), &domain.Class{Status: domain.StatusPending})

	booked := 5
	if _, err := svc.UpdateCounters(context.Background(), id, ports.CounterUpdate{Booked: &booked}); err != nil {
		t.Fatalf("counter update failed: %v", err)
	}
	if _, err := svc.Transition(context.Background(), id, domain.StatusApproved); err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if cache.invalidated != 2 {
		t.Fatalf("expected 2 invalidations, got %d", cache.invalidated)
	}
}
