package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

type stubResolver struct {
	profile     *domain.Profile
	err         error
	invalidated []string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*domain.Profile, error) {
	return s.profile, s.err
}

func (s *stubResolver) Invalidate(token string) {
	s.invalidated = append(s.invalidated, token)
}

type stubRevoker struct {
	revoked []string
	err     error
}

func (s *stubRevoker) Logout(_ context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	return s.err
}

func sessionContextRequest(t *testing.T, resolver *stubResolver, revoker *stubRevoker, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "abc123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionContext(resolver, revoker, zerolog.Nop())(next)
	return rec, handler(c)
}

func TestSessionContext_PublishesProfile(t *testing.T) {
	resolver := &stubResolver{profile: &domain.Profile{ID: "u1", Role: domain.RoleIndividual}}
	revoker := &stubRevoker{}

	var seen *domain.Profile
	rec, err := sessionContextRequest(t, resolver, revoker, func(c echo.Context) error {
		seen = Profile(c)
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.ID != "u1" {
		t.Fatalf("expected the resolved profile in the request context, got %+v", seen)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("valid session must not be revoked")
	}
}

func TestSessionContext_InvalidSessionPurgesAndRedirectsOnce(t *testing.T) {
	resolver := &stubResolver{err: domain.ErrInvalidSession}
	revoker := &stubRevoker{}

	rec, err := sessionContextRequest(t, resolver, revoker, func(c echo.Context) error {
		t.Fatalf("handler must not run on an invalid session")
		return nil
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected single 303 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != LoginPath {
		t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
	}

	// Revocation precedes the redirect: server record, cache, cookie.
	if len(revoker.revoked) != 1 || revoker.revoked[0] != "abc123" {
		t.Fatalf("expected server-side revocation of abc123, got %v", revoker.revoked)
	}
	if len(resolver.invalidated) != 1 || resolver.invalidated[0] != "abc123" {
		t.Fatalf("expected cache invalidation of abc123, got %v", resolver.invalidated)
	}
	assertCookieCleared(t, rec)
}

func TestSessionContext_UnknownRoleForcesLogout(t *testing.T) {
	resolver := &stubResolver{err: domain.ErrUnknownRole}
	revoker := &stubRevoker{}

	rec, err := sessionContextRequest(t, resolver, revoker, func(c echo.Context) error {
		t.Fatalf("no experience tree may render for an unrecognized role")
		return nil
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if len(revoker.revoked) != 1 {
		t.Fatalf("expected the session to be revoked, got %v", revoker.revoked)
	}
	assertCookieCleared(t, rec)
}

func TestSessionContext_TransientFailurePreservesToken(t *testing.T) {
	resolver := &stubResolver{err: domain.ErrIdentityUnavailable}
	revoker := &stubRevoker{}

	rec, err := sessionContextRequest(t, resolver, revoker, func(c echo.Context) error {
		t.Fatalf("handler must not run while identity is unreachable")
		return nil
	})
	if !errors.Is(err, domain.ErrIdentityUnavailable) {
		t.Fatalf("expected explicit retryable error, got %v", err)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on transient failure")
	}

	// The verdict is not definitive, so the token must survive intact.
	if len(revoker.revoked) != 0 {
		t.Fatalf("transient failure must not revoke the session, got %v", revoker.revoked)
	}
	if len(resolver.invalidated) != 0 {
		t.Fatalf("transient failure must not drop the cache, got %v", resolver.invalidated)
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookie {
			t.Fatalf("transient failure must not touch the session cookie")
		}
	}
}

func TestSessionContext_RevocationFailureStillClearsClient(t *testing.T) {
	resolver := &stubResolver{err: domain.ErrInvalidSession}
	revoker := &stubRevoker{err: errors.New("store down")}

	rec, err := sessionContextRequest(t, resolver, revoker, func(c echo.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 despite revocation failure, got %d", rec.Code)
	}
	assertCookieCleared(t, rec)
}

func assertCookieCleared(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookie {
			if cookie.Value != "" || cookie.MaxAge >= 0 {
				t.Fatalf("session cookie not cleared: %s", cookie.String())
			}
			return
		}
	}
	t.Fatalf("expected a Set-Cookie clearing %s, headers: %s", SessionCookie, strings.Join(rec.Header()["Set-Cookie"], "; "))
}
