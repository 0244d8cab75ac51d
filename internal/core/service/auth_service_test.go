package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by email
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.seq++
	copy.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.LastLogin = time.Now().UTC()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) IncrementDetections(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.DetectionsCount++
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		clone := *sess
		return &clone, nil
	}
	return nil, domain.ErrInvalidSession
}

func (s *stubSessionStore) Revoke(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func newTestAuthService(ttl time.Duration) (*AuthService, *stubUserRepo, *stubSessionStore) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	return NewAuthService(users, sessions, "secret", ttl, zerolog.Nop()), users, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass12345", domain.RoleIndividual)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleIndividual {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("new accounts must start active")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	first, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass12345", domain.RoleIndividual)
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// A second registration with the same email must fail outright; it
	// must never hand the new registrant the existing account's record.
	second, err := svc.Register(context.Background(), "Mallory", "alice@example.com", "different1", domain.RoleBusiness)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if second != nil {
		t.Fatalf("duplicate registration must not return a user, got ID %s (existing ID %s)", second.ID, first.ID)
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass12345", "admin"); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, sessions := newTestAuthService(time.Hour)

	if _, err := svc.Register(context.Background(), "Carol Corp", "carol@example.com", "s3cret99", domain.RoleBusiness); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Role != domain.RoleBusiness {
		t.Fatalf("unexpected user: %+v", user)
	}

	sessions.mu.Lock()
	count := len(sessions.sessions)
	sessions.mu.Unlock()
	if count != 1 {
		t.Fatalf("expected one session record, got %d", count)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass1", domain.RoleIndividual)
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	svc, users, _ := newTestAuthService(time.Hour)

	_, _ = svc.Register(context.Background(), "Eve", "eve@example.com", "goodpass1", domain.RoleIndividual)
	users.mu.Lock()
	users.users["eve@example.com"].IsActive = false
	users.mu.Unlock()

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "goodpass1"); !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuthService_ProfileRoundtrip(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	_, _ = svc.Register(context.Background(), "Frank", "frank@example.com", "goodpass1", domain.RoleIndividual)
	token, user, err := svc.Login(context.Background(), "frank@example.com", "goodpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	profile, err := svc.Profile(context.Background(), token)
	if err != nil {
		t.Fatalf("profile fetch failed: %v", err)
	}
	if profile.ID != user.ID || profile.Role != domain.RoleIndividual {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAuthService_Profile_RevokedToken(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	_, _ = svc.Register(context.Background(), "Grace", "grace@example.com", "goodpass1", domain.RoleIndividual)
	token, _, err := svc.Login(context.Background(), "grace@example.com", "goodpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Profile(context.Background(), token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}
}

func TestAuthService_Profile_TamperedToken(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Hour)

	if _, err := svc.Profile(context.Background(), "not-a-real-token"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestAuthService_Profile_ExpiredSession(t *testing.T) {
	svc, _, _ := newTestAuthService(time.Millisecond)

	_, _ = svc.Register(context.Background(), "Heidi", "heidi@example.com", "goodpass1", domain.RoleIndividual)
	token, _, err := svc.Login(context.Background(), "heidi@example.com", "goodpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := svc.Profile(context.Background(), token); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired session, got %v", err)
	}
}
