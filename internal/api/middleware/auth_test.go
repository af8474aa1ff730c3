package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lordhost/storefront-client/internal/core/domain"
)

type fixedSession struct {
	session domain.Session
	ok      bool
}

func (f fixedSession) Current() (domain.Session, bool) { return f.session, f.ok }

func TestRequireSession_SignedIn(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reader := fixedSession{
		session: domain.Session{User: domain.User{ID: 3, Email: "alice@example.com"}, Token: "tok"},
		ok:      true,
	}

	called := false
	mw := RequireSession(reader)
	handler := mw(func(c echo.Context) error {
		called = true
		s, ok := c.Get(SessionKey).(domain.Session)
		if !ok {
			t.Fatalf("session not set")
		}
		if s.User.Email != "alice@example.com" || s.Token != "tok" {
			t.Fatalf("unexpected session: %+v", s)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSession_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		reader fixedSession
	}{
		{"signed out", fixedSession{}},
		{"empty token", fixedSession{session: domain.Session{User: domain.User{Email: "a@b.c"}}, ok: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequireSession(tt.reader)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
