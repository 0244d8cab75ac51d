package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// AuthService implements the identity provider: registration, login with
// revocable session tokens, logout, and the token-to-profile exchange.
//
// The issued token is a signed JWT, but the gate never inspects it — the
// session record in the store is what makes it revocable, so to every
// other component the token is an opaque string.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrUnknownRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, domain.ErrUserInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.signToken(session, user)
	if err != nil {
		return "", nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	return token, user, nil
}

// Logout revokes the session record backing the token. Revocation happens
// before the transport layer clears the client-held cookie, so the edge
// gate and the store never disagree about a live token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, _, err := s.parseToken(token)
	if err != nil {
		// Token not ours or already unusable: nothing to revoke.
		return nil
	}
	return s.sessions.Revoke(ctx, sid)
}

// Profile exchanges a token for the authoritative user profile. A bad
// signature, a revoked or expired session record, or a vanished user all
// yield domain.ErrInvalidSession — the definitive verdict the resolver
// treats as grounds for purging the token.
func (s *AuthService) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	sid, userID, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessions.Find(ctx, sid)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSession) {
			return nil, domain.ErrInvalidSession
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session.Expired(time.Now().UTC()) || session.UserID != userID {
		return nil, domain.ErrInvalidSession
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	return domain.ProfileOf(user), nil
}

func (s *AuthService) signToken(session *domain.Session, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.ID,
		"sub": user.ID,
		"exp": session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (sid, userID string, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrInvalidSession
	}

	sid, _ = claims["sid"].(string)
	userID, _ = claims["sub"].(string)
	if sid == "" || userID == "" {
		return "", "", domain.ErrInvalidSession
	}
	return sid, userID, nil
}
