// Package config loads and validates the Telegram login configuration from
// YAML files and environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/RazorNd/telegram-login/logger"
	"github.com/RazorNd/telegram-login/login"
	"github.com/RazorNd/telegram-login/server"
	"github.com/RazorNd/telegram-login/session"
)

// Config is the full configuration surface of a Telegram login deployment.
// The bot token and freshness window feed the validators; everything else
// configures the surrounding glue.
type Config struct {
	// BotToken is the shared secret issued by BotFather. It is consumed once
	// at startup to derive the validation key and never logged.
	BotToken string `mapstructure:"bot_token" validate:"required"`

	// ExpirationWindow bounds the accepted age of a widget payload.
	ExpirationWindow time.Duration `mapstructure:"expiration_window"`

	Session session.Config `mapstructure:"session"`
	Server  server.Config  `mapstructure:"server"`
	Logging logger.Config  `mapstructure:"logging"`
}

// ApplyDefaults sets sensible defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.ExpirationWindow == 0 {
		c.ExpirationWindow = login.DefaultExpirationWindow
	}
	c.Session.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration, collecting struct-tag violations first
// and then delegating to each sub-config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("config: field %s failed rule %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	if c.ExpirationWindow < 0 {
		return fmt.Errorf("config: expiration_window must be non-negative (got: %s)", c.ExpirationWindow)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Describe returns a human-readable one-liner for the startup summary.
// The bot token itself is redacted.
func (c *Config) Describe() string {
	return fmt.Sprintf("bot=***%s window=%s session(%s) TTL=%s addr=%s",
		lastChars(c.BotToken, 4), c.ExpirationWindow, c.Session.Method, c.Session.TTL, c.Server.Addr())
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func lastChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
