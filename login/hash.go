package login

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashValidator verifies the integrity of a widget payload against the bot
// token shared with Telegram.
//
// The secret key is derived once as SHA-256 of the bot token — this is what
// the widget protocol prescribes, not a configurable key derivation — and
// the original token is not retained. The validator is read-only after
// construction and safe to share across goroutines.
type HashValidator struct {
	secretKey []byte
}

// NewHashValidator creates a HashValidator for the given bot token.
func NewHashValidator(botToken string) *HashValidator {
	sum := sha256.Sum256([]byte(botToken))
	return &HashValidator{secretKey: sum[:]}
}

// Validate recomputes the HMAC-SHA256 of the user's data-check string and
// compares it in constant time against the claimed hash.
//
// A hash that is not valid hex yields Invalid("Invalid hash format"); a
// well-formed hash that does not match yields Invalid("Invalid hash").
// The empty string is a well-formed hash of zero bytes and never matches,
// so a widget redirect with a blank hash parameter is rejected like any
// other forgery.
func (v *HashValidator) Validate(user User) Result {
	claimed, err := hex.DecodeString(user.Hash)
	if err != nil {
		return Invalid{Reason: "Invalid hash format"}
	}

	mac := hmac.New(sha256.New, v.secretKey)
	mac.Write([]byte(DataCheckString(user.Profile)))

	if hmac.Equal(mac.Sum(nil), claimed) {
		return Valid{}
	}
	return Invalid{Reason: "Invalid hash"}
}
