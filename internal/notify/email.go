package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Dialer sends composed messages
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends HTML mail over SMTP
type Mailer struct {
	dialer Dialer
	from   string
}

// SMTPConfig holds the SMTP connection settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewMailer creates a Mailer dialing the configured SMTP server
func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("SMTP host and sender must be configured")
	}
	return NewMailerWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From), nil
}

// NewMailerWithDialer creates a Mailer on top of an existing dialer
func NewMailerWithDialer(dialer Dialer, from string) *Mailer {
	return &Mailer{dialer: dialer, from: from}
}

// Send delivers an HTML message to a single recipient
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
