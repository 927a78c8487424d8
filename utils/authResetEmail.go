package utils

import (
	"MediCore/config"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional email.
type Mailer interface {
	SendResetCode(email, code string) error
	SendStaffWelcome(email, name, role string) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns an SMTP mailer, or a mailer that only logs when SMTP is not configured.
func NewMailer(cfg *config.AppConfig, logger zerolog.Logger) Mailer {
	if !cfg.MailEnabled() {
		return &logMailer{logger: logger}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) SendResetCode(email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password Reset Code")
	msg.SetBody("text/plain", "Your password reset code is: "+code)
	msg.AddAlternative("text/html", `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<div style="background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px;">
		<h1 style="color: #333333;">Password Reset Code</h1>
		<p>Your password reset code is:</p>
		<p style="font-weight: bold; color: #007bff;">`+code+`</p>
		<p>The code expires in 15 minutes. If you did not request a password reset, please ignore this email.</p>
	</div>
</body>
</html>`)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendStaffWelcome(email, name, role string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to MediCore")
	msg.SetBody("text/plain", "Hello "+name+",\n\nYour MediCore staff account ("+role+") has been created. "+
		"Sign in with this email address and the password given to you by the administrator.")
	return m.dialer.DialAndSend(msg)
}

type logMailer struct {
	logger zerolog.Logger
}

func (m *logMailer) SendResetCode(email, _ string) error {
	m.logger.Warn().Str("to", email).Msg("smtp not configured, reset code email not sent")
	return nil
}

func (m *logMailer) SendStaffWelcome(email, _, _ string) error {
	m.logger.Info().Str("to", email).Msg("smtp not configured, welcome email not sent")
	return nil
}
