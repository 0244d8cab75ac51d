package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role classifies an account into exactly one of two experience trees.
// The set is closed: any other value invalidates the whole profile.
type Role string

const (
	RoleIndividual Role = "individual"
	RoleBusiness   Role = "business"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a raw role string into a Role, rejecting anything
// outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleIndividual, RoleBusiness:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleIndividual || r == RoleBusiness
}

// User is the persisted account record owned by the identity boundary.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Role            Role      `json:"role"`
	IsActive        bool      `json:"isActive"`
	LastLogin       time.Time `json:"lastLogin"`
	DetectionsCount int64     `json:"detectionsCount"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Profile is the authoritative view of a user resolved from a session
// token. It is fetched once per session bootstrap and cached for the
// session lifetime; it is never refreshed automatically.
type Profile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	IsActive        bool      `json:"isActive"`
	LastLogin       time.Time `json:"lastLogin"`
	DetectionsCount int64     `json:"detectionsCount"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProfileOf builds the profile view exposed by the identity boundary.
func ProfileOf(u *User) *Profile {
	return &Profile{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		IsActive:        u.IsActive,
		LastLogin:       u.LastLogin,
		DetectionsCount: u.DetectionsCount,
		AvatarURL:       u.AvatarURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
