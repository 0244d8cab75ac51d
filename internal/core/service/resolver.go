package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

const defaultResolveTimeout = 10 * time.Second

// flight is one outstanding profile fetch shared by every caller that
// presents the same token while it is in progress.
type flight struct {
	cancel  context.CancelFunc
	done    chan struct{}
	waiters int
	settled bool
	profile *domain.Profile
	err     error
}

// ProfileResolver exchanges session tokens for profiles through the
// identity boundary. It is the single source of truth for the resolved
// profile: the role router and every route guard read its output, never
// an independently sourced copy.
//
// Guarantees:
//   - at most one in-flight fetch per token; concurrent callers join it
//   - a successful resolution is cached until Invalidate is called
//   - if every waiter abandons a flight before it settles, the result is
//     discarded and never cached
//   - a profile whose role is outside the closed set is rejected whole
type ProfileResolver struct {
	client  ports.IdentityClient
	timeout time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	cache   map[string]*domain.Profile
	flights map[string]*flight
}

func NewProfileResolver(client ports.IdentityClient, timeout time.Duration, log zerolog.Logger) *ProfileResolver {
	if timeout <= 0 {
		timeout = defaultResolveTimeout
	}
	return &ProfileResolver{
		client:  client,
		timeout: timeout,
		log:     log,
		cache:   make(map[string]*domain.Profile),
		flights: make(map[string]*flight),
	}
}

// Resolve returns the profile for the token, fetching it from the
// identity boundary on first use and serving the cached copy afterwards.
// A second caller arriving while a fetch is outstanding waits for that
// same fetch rather than spawning another.
func (r *ProfileResolver) Resolve(ctx context.Context, token string) (*domain.Profile, error) {
	r.mu.Lock()
	if p, ok := r.cache[token]; ok {
		r.mu.Unlock()
		return p, nil
	}

	f, ok := r.flights[token]
	if !ok {
		fctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		f = &flight{cancel: cancel, done: make(chan struct{})}
		r.flights[token] = f
		go r.run(fctx, token, f)
	}
	f.waiters++
	r.mu.Unlock()

	select {
	case <-f.done:
		return f.profile, f.err
	case <-ctx.Done():
	}

	// Caller abandoned the flight. If it settled in the meantime, use the
	// result; otherwise leave, and the last waiter out cancels the fetch
	// so nothing mutates state on behalf of a caller that is gone.
	r.mu.Lock()
	if f.settled {
		r.mu.Unlock()
		return f.profile, f.err
	}
	f.waiters--
	if f.waiters == 0 {
		f.cancel()
		if r.flights[token] == f {
			delete(r.flights, token)
		}
	}
	r.mu.Unlock()
	return nil, ctx.Err()
}

// Invalidate drops the cached profile and aborts any outstanding fetch
// for the token. Used on logout and on invalid-session recovery so a
// dead token can never serve a stale profile.
func (r *ProfileResolver) Invalidate(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cache, token)
	if f, ok := r.flights[token]; ok {
		f.cancel()
		delete(r.flights, token)
	}
}

func (r *ProfileResolver) run(ctx context.Context, token string, f *flight) {
	defer f.cancel()

	profile, err := r.client.FetchProfile(ctx, token)
	if err == nil && !profile.Role.Valid() {
		// Invariant: the closed role set. An unrecognized role poisons
		// the whole profile, it is not partially usable.
		err = fmt.Errorf("%w: %q", domain.ErrUnknownRole, profile.Role)
		profile = nil
	}
	if err != nil {
		r.log.Debug().Err(err).Msg("profile resolution failed")
	}

	r.mu.Lock()
	f.settled = true
	f.profile = profile
	f.err = err
	if r.flights[token] == f {
		delete(r.flights, token)
		// Cache only when the flight was neither invalidated nor fully
		// abandoned while in the air.
		if err == nil && f.waiters > 0 {
			r.cache[token] = profile
		}
	}
	r.mu.Unlock()
	close(f.done)
}
