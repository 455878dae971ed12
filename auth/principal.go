package auth

// FactorTelegram is the authority tag added to every principal authenticated
// through the Telegram Login Widget, marking how the session was established.
const FactorTelegram = "TELEGRAM"

// Principal is an identity resolved from a validated Telegram login.
// login.Profile satisfies it, as can any project-specific account type
// returned by a UserService.
type Principal interface {
	// TelegramID returns the unique Telegram identifier of the user.
	TelegramID() int64

	// Authorities returns the authorities granted to this principal.
	Authorities() []string
}

// Authentication is the terminal state of a successful login: the resolved
// principal and the full deduplicated authority set, which always contains
// FactorTelegram on top of whatever the user service granted.
type Authentication struct {
	Principal   Principal
	Authorities []string
}

// HasAuthority reports whether the authentication carries the given authority.
func (a *Authentication) HasAuthority(authority string) bool {
	for _, granted := range a.Authorities {
		if granted == authority {
			return true
		}
	}
	return false
}

// combineAuthorities unions the principal's authorities with the factor tag,
// preserving first-seen order and dropping duplicates.
func combineAuthorities(granted []string) []string {
	combined := make([]string, 0, len(granted)+1)
	seen := make(map[string]struct{}, len(granted)+1)
	for _, authority := range append(append([]string{}, granted...), FactorTelegram) {
		if _, ok := seen[authority]; ok {
			continue
		}
		seen[authority] = struct{}{}
		combined = append(combined, authority)
	}
	return combined
}
