package mailer

import (
	"fmt"

	"foodbank-backend/internal/config"
	"foodbank-backend/internal/logger"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// New creates a mailer from SMTP configuration
func New(cfg *config.Config, log *logger.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		log:    log,
	}
}

// SendPasswordResetCode mails a six digit reset code to the recipient
func (m *Mailer) SendPasswordResetCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your password reset code is %s.\n\nThe code expires in 15 minutes. If you did not request a reset, ignore this email.\n", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	m.log.WithField("to", to).Info("password reset email sent")
	return nil
}
