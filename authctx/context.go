// Package authctx propagates the authenticated identity through a request
// context.
//
// The server middleware stores whatever the authentication step produced —
// an *auth.Authentication after a widget login, or *session.Claims for a
// request bearing a session token — and handlers retrieve it typed:
//
//	claims := authctx.MustGet[*session.Claims](ctx)
package authctx

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var identityKey = contextKey{}

// ErrNoIdentity is returned when no identity is stored in the context.
var ErrNoIdentity = errors.New("authctx: no identity in context")

// Set stores the authenticated identity in the context.
func Set(ctx context.Context, identity any) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// Get retrieves the typed identity from the context.
// Returns the zero value and false if absent or of a different type.
func Get[T any](ctx context.Context) (T, bool) {
	val := ctx.Value(identityKey)
	if val == nil {
		var zero T
		return zero, false
	}
	identity, ok := val.(T)
	return identity, ok
}

// MustGet retrieves the typed identity from the context.
// Panics if it is missing; use only behind middleware that guarantees it.
func MustGet[T any](ctx context.Context) T {
	identity, ok := Get[T](ctx)
	if !ok {
		panic("authctx: identity not found in context or wrong type")
	}
	return identity
}

// GetOrError retrieves the typed identity from the context, returning
// ErrNoIdentity if it is missing or of a different type.
func GetOrError[T any](ctx context.Context) (T, error) {
	identity, ok := Get[T](ctx)
	if !ok {
		var zero T
		return zero, ErrNoIdentity
	}
	return identity, nil
}
