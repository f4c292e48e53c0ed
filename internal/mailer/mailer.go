// Package mailer delivers reset-PIN emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
)

// Mailer sends a reset PIN to a recipient address.
type Mailer interface {
	SendPINEmail(ctx context.Context, to, pin string) error
}

// SMTPMailer is the net/smtp implementation of [Mailer] using PLAIN
// authentication against the configured relay.
type SMTPMailer struct {
	cfg    config.SMTP
	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] for the configured relay.
func NewSMTPMailer(cfg config.SMTP, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		logger: log,
	}
}

// SendPINEmail delivers the reset PIN in a short plain-text message.
func (m *SMTPMailer) SendPINEmail(ctx context.Context, to, pin string) error {
	log := logger.FromContext(ctx)

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset PIN\r\n\r\nYour password reset PIN is %s. It expires in 5 minutes.\r\n",
		m.cfg.From, to, pin,
	)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(body)); err != nil {
		log.Err(err).Str("to", to).Msg("failed to send reset PIN email")
		return fmt.Errorf("error sending reset PIN email: %w", err)
	}

	log.Info().Str("to", to).Msg("reset PIN email sent")
	return nil
}

// NopMailer is a [Mailer] that drops every message. Used in tests and in
// deployments without a configured relay.
type NopMailer struct{}

func (NopMailer) SendPINEmail(context.Context, string, string) error {
	return nil
}
