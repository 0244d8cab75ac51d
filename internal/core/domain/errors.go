package domain

import "errors"

// Gate error taxonomy. Each sentinel maps to one user-visible outcome:
// session failures degrade to a single login redirect, authorization
// failures to an in-place denial view, transient identity failures to a
// retryable error that never forces a logout.
var (
	// ErrNoSession: no session token presented at all.
	ErrNoSession = errors.New("no session token")

	// ErrInvalidSession: the identity boundary gave a definitive verdict
	// that the token is not usable (401/403).
	ErrInvalidSession = errors.New("invalid session")

	// ErrIdentityUnavailable: the identity boundary could not be reached
	// or answered with a server error. Transient; the token is preserved
	// so the caller can retry.
	ErrIdentityUnavailable = errors.New("identity service unavailable")

	// ErrUnauthorized: role resolved and valid, but not in a route's
	// allow-list.
	ErrUnauthorized = errors.New("role not authorized for route")

	// ErrMalformedProfile: the identity boundary answered 2xx but the
	// body did not carry a well-formed user object.
	ErrMalformedProfile = errors.New("malformed profile payload")
)

// Identity-provider errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
)
