package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if len(c.MWP.Secret) < 32 {
		return fmt.Errorf("mwp.secret must be at least 32 characters (got %d)", len(c.MWP.Secret))
	}
	switch strings.ToLower(c.MWP.Algorithm) {
	case "sha256", "sha512":
	default:
		return fmt.Errorf("mwp.algorithm must be sha256 or sha512 (got %q)", c.MWP.Algorithm)
	}

	if c.Token.TTL <= 0 {
		return fmt.Errorf("token.ttl must be > 0 (got %v)", c.Token.TTL)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if _, err := cron.ParseStandard(c.Sweeper.Schedule); err != nil {
		return fmt.Errorf("sweeper.schedule: %w", err)
	}
	if c.Sweeper.BatchSize <= 0 {
		return fmt.Errorf("sweeper.batch_size must be > 0 (got %d)", c.Sweeper.BatchSize)
	}

	if c.Timeouts.Database <= 0 || c.Timeouts.Compensation <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}

	return nil
}

func (m *MailConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(m.AMQPURL))
	if err != nil {
		return fmt.Errorf("amqp_url: %w", err)
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return fmt.Errorf("amqp_url scheme must be amqp or amqps (got %q)", u.Scheme)
	}

	web, err := url.Parse(m.WebAppAddress)
	if err != nil || web.Scheme == "" || web.Host == "" {
		return fmt.Errorf("web_app_address must be an absolute URL (got %q)", m.WebAppAddress)
	}
	m.WebAppAddress = strings.TrimRight(m.WebAppAddress, "/")

	if !strings.Contains(m.SenderEmail, "@") {
		return fmt.Errorf("sender_email must be an email address (got %q)", m.SenderEmail)
	}
	if m.PublishTimeout <= 0 {
		return fmt.Errorf("publish_timeout must be > 0")
	}
	return nil
}
