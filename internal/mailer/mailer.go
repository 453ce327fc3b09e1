// Package mailer sends the Slack invite email over a configured SMTP relay.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Config holds the relay and addressing settings for invite emails.
type Config struct {
	Region         string
	SenderAddress  string
	ReplyToAddress string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	InviteLink     string
}

// Mailer composes and sends invite emails.
type Mailer struct {
	cfg    Config
	logger *slog.Logger

	// sendMail is swapped in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer. Credentials are optional; when SMTPUser is empty the
// relay is used unauthenticated.
func New(cfg Config, logger *slog.Logger) *Mailer {
	return &Mailer{
		cfg:      cfg,
		logger:   logger,
		sendMail: smtp.SendMail,
	}
}

// SendInvite emails the contact a link to join the region's Slack workspace.
func (m *Mailer) SendInvite(f3Name, hospitalName, email string) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.cfg.Region, m.cfg.SenderAddress))
	msg.WriteString(fmt.Sprintf("Reply-To: %s <%s>\r\n", m.cfg.Region, m.cfg.ReplyToAddress))
	msg.WriteString(fmt.Sprintf("To: %s <%s>\r\n", hospitalName, email))
	msg.WriteString(fmt.Sprintf("Subject: Join %s on Slack\r\n", m.cfg.Region))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf(`Hi %s! Please join %s on Slack by clicking this <a href="%s">link</a>.`,
		f3Name, m.cfg.Region, m.cfg.InviteLink))

	var auth smtp.Auth
	if m.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	if err := m.sendMail(addr, auth, m.cfg.SenderAddress, []string{email}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send invite to %s: %w", email, err)
	}

	m.logger.Debug("invite email sent", "to", email)
	return nil
}
