package auth

import (
	"context"

	"github.com/RazorNd/telegram-login/login"
)

// UserService resolves a validated Telegram profile into a Principal.
// This is the enrichment point: implementations typically load or create an
// account record and attach the authorities it carries. The lookup may
// perform I/O; it must honor the context and return exactly once.
type UserService interface {
	LoadUser(ctx context.Context, profile login.Profile) (Principal, error)
}

// UserServiceFunc adapts an ordinary function to the UserService interface.
type UserServiceFunc func(ctx context.Context, profile login.Profile) (Principal, error)

// LoadUser implements UserService.
func (f UserServiceFunc) LoadUser(ctx context.Context, profile login.Profile) (Principal, error) {
	return f(ctx, profile)
}

// SimpleUserService is the default enrichment: it trusts the validated
// profile as the principal and grants no additional authorities.
type SimpleUserService struct{}

// LoadUser implements UserService.
func (SimpleUserService) LoadUser(_ context.Context, profile login.Profile) (Principal, error) {
	return profile, nil
}
