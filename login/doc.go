// Package login validates payloads produced by the Telegram Login Widget.
//
// The widget appends the user's identity fields and an HMAC-SHA256 hash to a
// redirect URL. This package covers the untrusted half of the flow: building
// a User from those raw parameters, computing the canonical data-check
// string, and checking the hash and freshness of the payload.
//
//	validator := login.NewComposite(
//	    login.NewHashValidator(botToken),
//	    login.NewExpirationValidator(),
//	)
//	if res, ok := validator.Validate(user).(login.Invalid); ok {
//	    // res.Reason holds every failed check, comma separated
//	}
//
// Validators are stateless after construction and safe for concurrent use.
// For turning a validated User into an authenticated principal, see the
// auth package.
package login
