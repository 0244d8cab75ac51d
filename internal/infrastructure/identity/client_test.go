package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

func TestClient_FetchProfile_Success(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/profile" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"user":{"id":"u1","name":"Alice","email":"alice@example.com","role":"individual","isActive":true,"detectionsCount":15}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	profile, err := client.FetchProfile(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if profile.ID != "u1" || profile.Role != domain.RoleIndividual || profile.DetectionsCount != 15 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestClient_FetchProfile_DefinitiveRejection(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		client := NewClient(srv.URL, nil)
		_, err := client.FetchProfile(context.Background(), "dead")
		srv.Close()
		if !errors.Is(err, domain.ErrInvalidSession) {
			t.Fatalf("status %d: expected ErrInvalidSession, got %v", status, err)
		}
	}
}

func TestClient_FetchProfile_ServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	if _, err := client.FetchProfile(context.Background(), "abc123"); !errors.Is(err, domain.ErrIdentityUnavailable) {
		t.Fatalf("expected ErrIdentityUnavailable, got %v", err)
	}
}

func TestClient_FetchProfile_NetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, nil)
	if _, err := client.FetchProfile(context.Background(), "abc123"); !errors.Is(err, domain.ErrIdentityUnavailable) {
		t.Fatalf("expected ErrIdentityUnavailable on connection failure, got %v", err)
	}
}

func TestClient_FetchProfile_MalformedBody(t *testing.T) {
	cases := map[string]string{
		"not json":   `<html>oops</html>`,
		"empty data": `{"data":{}}`,
		"missing id": `{"data":{"user":{"name":"ghost"}}}`,
		"null user":  `{"data":{"user":null}}`,
	}
	for name, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		client := NewClient(srv.URL, nil)
		_, err := client.FetchProfile(context.Background(), "abc123")
		srv.Close()
		if !errors.Is(err, domain.ErrMalformedProfile) {
			t.Fatalf("%s: expected ErrMalformedProfile, got %v", name, err)
		}
	}
}
