// Package auth turns a validated Telegram login payload into an
// authenticated principal with granted authorities.
//
// The Authenticator composes a login.Validator with a pluggable UserService:
// validation decides pass/fail, the user service resolves the claim into a
// project-specific principal (account lookup, role assignment). The default
// SimpleUserService trusts the claim as-is.
//
//	authenticator := auth.NewAuthenticator(validator,
//	    auth.WithUserService(myUserService))
//	authn, err := authenticator.Authenticate(user)
//
// Authenticate is the blocking variant; AuthenticateContext behaves
// identically but lets the user-service lookup perform I/O under a
// cancellable context. Both produce at most one terminal result and never
// retry.
package auth
