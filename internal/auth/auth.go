package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrAccountNotFound  = errors.New("account not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrSessionMalformed = errors.New("session value malformed")
)

// Account is the authentication view of a profile.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"max=80"`
}

type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// Identity is the resolved current user, put in the request context by the auth middleware.
type Identity struct {
	UserID  string
	IsAdmin bool
}

type identityCtxKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}
	return identity, true
}
