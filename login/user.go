package login

import (
	"strconv"
	"time"
)

// Profile holds the identity fields of a widget payload without the hash.
// Optional fields are pointers: nil means the widget did not send the field,
// which is different from a present empty string — the distinction matters
// because absent fields are excluded from the data-check string.
type Profile struct {
	// ID is the unique Telegram identifier for this user.
	ID int64

	// AuthDate is when Telegram performed the authentication.
	AuthDate time.Time

	FirstName *string
	LastName  *string
	Username  *string
	PhotoURL  *string
}

// Name returns the user's ID in decimal form, used as the principal name.
func (p Profile) Name() string {
	return strconv.FormatInt(p.ID, 10)
}

// TelegramID returns the unique Telegram identifier.
func (p Profile) TelegramID() int64 {
	return p.ID
}

// Authorities returns nil: a bare profile carries no granted authorities.
// The authentication pipeline adds the factor authority itself.
func (p Profile) Authorities() []string {
	return nil
}

// User is a widget payload as received: a Profile plus the hex-encoded
// HMAC hash claimed by the widget. It is untrusted until validated.
type User struct {
	Profile

	// Hash is the hex-encoded HMAC-SHA256 the widget computed over the
	// data-check string.
	Hash string
}

// EraseHash discards the hash after validation so it is not retained, and
// returns the remaining profile. The result has no hash field at all, so an
// erased user cannot be passed back into a Validator.
func (u User) EraseHash() Profile {
	return u.Profile
}
