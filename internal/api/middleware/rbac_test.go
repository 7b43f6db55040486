package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/martialverse/booking-api/internal/core/domain"
)

type stubRoleReader struct {
	users map[string]*domain.User
}

func (s *stubRoleReader) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func runRequireRole(t *testing.T, reader *stubRoleReader, role, email string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}

	called := false
	handler := RequireRole(reader, role)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireRole_Allowed(t *testing.T) {
	reader := &stubRoleReader{users: map[string]*domain.User{
		"boss@x.com": {Email: "boss@x.com", Role: domain.RoleAdmin},
	}}

	rec, called := runRequireRole(t, reader, domain.RoleAdmin, "boss@x.com")
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	reader := &stubRoleReader{users: map[string]*domain.User{
		"student@x.com": {Email: "student@x.com", Role: domain.RoleStudent},
	}}

	rec, called := runRequireRole(t, reader, domain.RoleAdmin, "student@x.com")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_UnknownUser(t *testing.T) {
	reader := &stubRoleReader{users: map[string]*domain.User{}}

	rec, called := runRequireRole(t, reader, domain.RoleAdmin, "ghost@x.com")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NoClaims(t *testing.T) {
	reader := &stubRoleReader{users: map[string]*domain.User{}}

	rec, called := runRequireRole(t, reader, domain.RoleAdmin, "")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
