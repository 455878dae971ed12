package auth

import (
	"context"

	apperrors "github.com/RazorNd/telegram-login/errors"
	"github.com/RazorNd/telegram-login/login"
)

// Authenticator runs the full authentication pipeline: composed validation,
// credential erasure, and principal resolution. It is read-only after
// construction and safe for concurrent use; each call operates on its own
// payload value.
type Authenticator struct {
	validator login.Validator
	users     UserService
}

// Option customizes an Authenticator.
type Option func(*Authenticator)

// WithUserService replaces the default SimpleUserService.
func WithUserService(users UserService) Option {
	return func(a *Authenticator) {
		a.users = users
	}
}

// NewAuthenticator creates an Authenticator over the given validator.
func NewAuthenticator(validator login.Validator, opts ...Option) *Authenticator {
	a := &Authenticator{
		validator: validator,
		users:     SimpleUserService{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Supports reports whether the credential is a widget payload this
// authenticator can process.
func (a *Authenticator) Supports(credential any) bool {
	_, ok := credential.(login.User)
	return ok
}

// Authenticate validates the payload and resolves it into an authenticated
// principal, blocking until the user-service lookup returns.
//
// A rejected payload yields a bad-credentials *errors.AppError carrying the
// combined reason; a user-service failure is propagated as-is.
func (a *Authenticator) Authenticate(user login.User) (*Authentication, error) {
	profile, err := a.validate(user)
	if err != nil {
		return nil, err
	}

	principal, err := a.users.LoadUser(context.Background(), profile)
	if err != nil {
		return nil, err
	}
	return newAuthentication(principal), nil
}

// AuthenticateContext is the non-blocking variant of Authenticate with
// identical decision semantics. Credentials of any other type produce
// (nil, nil) rather than an error, so foreign inputs can fall through to a
// different authentication mechanism. The user-service lookup runs in its
// own goroutine; if ctx is cancelled before it completes, no Authentication
// is produced and the context error is returned.
func (a *Authenticator) AuthenticateContext(ctx context.Context, credential any) (*Authentication, error) {
	user, ok := credential.(login.User)
	if !ok {
		return nil, nil
	}

	profile, err := a.validate(user)
	if err != nil {
		return nil, err
	}

	type outcome struct {
		principal Principal
		err       error
	}
	done := make(chan outcome, 1)
	go func() {
		principal, err := a.users.LoadUser(ctx, profile)
		done <- outcome{principal: principal, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		return newAuthentication(out.principal), nil
	}
}

// validate runs the composed validators and erases the hash on success.
func (a *Authenticator) validate(user login.User) (login.Profile, error) {
	if invalid, ok := a.validator.Validate(user).(login.Invalid); ok {
		return login.Profile{}, apperrors.BadCredentials(invalid.Reason)
	}
	return user.EraseHash(), nil
}

func newAuthentication(principal Principal) *Authentication {
	return &Authentication{
		Principal:   principal,
		Authorities: combineAuthorities(principal.Authorities()),
	}
}
