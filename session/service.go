// Package session issues and verifies the signed session tokens handed out
// after a successful Telegram login. The widget payload itself is single-use;
// the session token is what authenticates every following request.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/RazorNd/telegram-login/auth"
	"github.com/RazorNd/telegram-login/login"
)

// Claims is the session token payload for a Telegram-authenticated user.
type Claims struct {
	gojwt.RegisteredClaims
	TelegramID  int64    `json:"telegram_id"`
	Username    string   `json:"username,omitempty"`
	Authorities []string `json:"authorities,omitempty"`
}

// Service issues and parses session tokens.
type Service struct {
	cfg Config
}

// NewService creates a session token service.
func NewService(cfg *Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Service{cfg: *cfg}, nil
}

// TTL returns the configured session token lifetime.
func (s *Service) TTL() time.Duration {
	return s.cfg.TTL
}

// Issue creates a signed session token for an authenticated principal.
// The subject is the Telegram ID; the authority set is carried verbatim.
func (s *Service) Issue(authn *auth.Authentication) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   strconv.FormatInt(authn.Principal.TelegramID(), 10),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		TelegramID:  authn.Principal.TelegramID(),
		Authorities: authn.Authorities,
	}
	if profile, ok := authn.Principal.(login.Profile); ok && profile.Username != nil {
		claims.Username = *profile.Username
	}

	token := gojwt.NewWithClaims(s.cfg.signingMethod(), claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and returns its claims.
// It checks the signature, the expiry, and the issuer when configured.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{s.cfg.signingMethod().Alg()}),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.cfg.Issuer))
	}

	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("session: parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("session: invalid token")
	}
	return claims, nil
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service) keyFunc(token *gojwt.Token) (any, error) {
	if token.Method.Alg() != s.cfg.signingMethod().Alg() {
		return nil, fmt.Errorf("session: unexpected signing method: %s", token.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}
