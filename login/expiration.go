package login

import "time"

// DefaultExpirationWindow is how long a widget payload stays acceptable
// after Telegram produced it.
const DefaultExpirationWindow = 24 * time.Hour

// ExpirationValidator rejects payloads whose auth_date is older than the
// configured window. A payload aged exactly the window is still accepted;
// only strictly older ones are rejected.
type ExpirationValidator struct {
	// Window is the maximum accepted payload age.
	Window time.Duration

	// Now supplies the current time. Override in tests for determinism.
	Now func() time.Time
}

// NewExpirationValidator creates an ExpirationValidator with the default
// 24-hour window and the wall clock.
func NewExpirationValidator() *ExpirationValidator {
	return &ExpirationValidator{
		Window: DefaultExpirationWindow,
		Now:    time.Now,
	}
}

// Validate implements Validator.
func (v *ExpirationValidator) Validate(user User) Result {
	cutoff := v.Now().Add(-v.Window)
	if user.AuthDate.Before(cutoff) {
		return Invalid{Reason: "auth_date expired"}
	}
	return Valid{}
}
