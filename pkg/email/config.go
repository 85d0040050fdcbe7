package email

import (
	"time"

	"github.com/Alijeyrad/notifications/config"
)

// Config holds email service configuration
type Config struct {
	Enabled bool
	From    string
	BaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
	SMTPTimeout  time.Duration
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	timeout := 30 * time.Second
	if c.SMTP.TimeoutSeconds > 0 {
		timeout = time.Duration(c.SMTP.TimeoutSeconds) * time.Second
	}
	port := c.SMTP.Port
	if port == 0 {
		port = 587
	}
	return Config{
		Enabled:      c.Enabled,
		From:         c.From,
		BaseURL:      c.BaseURL,
		SMTPHost:     c.SMTP.Host,
		SMTPPort:     port,
		SMTPUsername: c.SMTP.Username,
		SMTPPassword: c.SMTP.Password,
		SMTPUseTLS:   c.SMTP.UseTLS,
		SMTPTimeout:  timeout,
	}
}
