package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the single injected configuration object. No package-level
// mutable state; main loads it once and hands pieces to the constructors
// that need them.
type Config struct {
	ListenAddr   string `envconfig:"LISTEN_ADDR" default:":8080"`
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	InternalKey  string `envconfig:"INTERNAL_API_KEY" required:"true"`
	StaffContact string `envconfig:"STAFF_CONTACT_EMAIL" default:"attorney@yourfirm.com"`

	MailHost string `envconfig:"MAIL_HOST"`
	MailPort int    `envconfig:"MAIL_PORT" default:"587"`
	MailUser string `envconfig:"MAIL_USER"`
	MailPass string `envconfig:"MAIL_PASS"`
	MailFrom string `envconfig:"MAIL_FROM" default:"no-reply@yourfirm.com"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SMTPConfigured reports whether real mail delivery is set up. Without it
// the service falls back to logging outgoing mail.
func (c *Config) SMTPConfigured() bool {
	return c.MailHost != ""
}
