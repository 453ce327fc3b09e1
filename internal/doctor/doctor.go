// Package doctor validates f3utils configuration before the service starts.
package doctor

import (
	"encoding/json"
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"strings"

	"github.com/f3stcharles/f3utils/internal/config"
	"github.com/f3stcharles/f3utils/internal/slack"
)

// Result holds the outcome of a validation run.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Issue describes a single validation error or warning.
type Issue struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}

// Doctor validates a loaded configuration.
type Doctor struct {
	cfg *config.Config
}

// New creates a Doctor from a loaded config.
func New(cfg *config.Config) *Doctor {
	return &Doctor{cfg: cfg}
}

// Validate runs all checks and returns a result.
func (d *Doctor) Validate() *Result {
	r := &Result{Valid: true}

	d.validateService(r)
	d.validateSlack(r)
	d.validateEmail(r)
	d.validateMailchimp(r)
	d.validateDatabase(r)

	r.Valid = len(r.Errors) == 0
	return r
}

func (d *Doctor) addError(r *Result, category, field, msg string) {
	r.Errors = append(r.Errors, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) addWarning(r *Result, category, field, msg string) {
	r.Warnings = append(r.Warnings, Issue{Category: category, Field: field, Message: msg})
}

// validateService checks the listen address.
func (d *Doctor) validateService(r *Result) {
	if d.cfg.Service.Listen == "" {
		d.addError(r, "service", "service.listen", "service.listen is required")
		return
	}
	if _, _, err := net.SplitHostPort(d.cfg.Service.Listen); err != nil {
		d.addError(r, "service", "service.listen",
			fmt.Sprintf("listen address %q is not host:port: %v", d.cfg.Service.Listen, err))
	}
}

// validateSlack checks the credentials the interaction endpoint depends on.
func (d *Doctor) validateSlack(r *Result) {
	if _, err := slack.NewVerifier(d.cfg.Slack.SigningSecret); err != nil {
		d.addError(r, "slack", "slack.signing_secret",
			fmt.Sprintf("signing secret unusable: %v", err))
	}

	if d.cfg.Slack.APIKey == "" {
		d.addError(r, "slack", "slack.api_key", "slack.api_key is required")
	} else if !strings.HasPrefix(d.cfg.Slack.APIKey, "xoxb-") {
		d.addWarning(r, "slack", "slack.api_key",
			"api key does not look like a bot token (expected xoxb- prefix)")
	}

	if d.cfg.Slack.ChannelID == "" {
		d.addError(r, "slack", "slack.channel_id", "slack.channel_id is required")
	} else if !strings.HasPrefix(d.cfg.Slack.ChannelID, "C") {
		d.addWarning(r, "slack", "slack.channel_id",
			fmt.Sprintf("channel id %q does not look like a channel (expected C prefix)", d.cfg.Slack.ChannelID))
	}

	if d.cfg.Slack.InviteLink == "" {
		d.addError(r, "slack", "slack.invite_link", "slack.invite_link is required")
		return
	}
	u, err := url.Parse(d.cfg.Slack.InviteLink)
	if err != nil || u.Host == "" {
		d.addError(r, "slack", "slack.invite_link",
			fmt.Sprintf("invite link %q is not an absolute URL", d.cfg.Slack.InviteLink))
		return
	}
	if u.Scheme != "https" {
		d.addWarning(r, "slack", "slack.invite_link", "invite link is not https")
	}
}

// validateEmail checks the SMTP settings and address fields.
func (d *Doctor) validateEmail(r *Result) {
	if d.cfg.Email.SMTPHost == "" {
		d.addError(r, "email", "email.smtp_host", "email.smtp_host is required")
	}
	if d.cfg.Email.SMTPPort < 1 || d.cfg.Email.SMTPPort > 65535 {
		d.addError(r, "email", "email.smtp_port",
			fmt.Sprintf("smtp port %d out of range", d.cfg.Email.SMTPPort))
	}
	if d.cfg.Email.SMTPUser == "" {
		d.addWarning(r, "email", "email.smtp_user",
			"no smtp user configured; mail will be sent unauthenticated")
	}

	checkAddress := func(field, value string) {
		if value == "" {
			d.addError(r, "email", field, field+" is required")
			return
		}
		if _, err := mail.ParseAddress(value); err != nil {
			d.addError(r, "email", field,
				fmt.Sprintf("%q is not a valid email address: %v", value, err))
		}
	}
	checkAddress("email.sender_address", d.cfg.Email.SenderAddress)
	checkAddress("email.reply_to_address", d.cfg.Email.ReplyToAddress)
}

// validateMailchimp checks the mailing-list settings.
func (d *Doctor) validateMailchimp(r *Result) {
	if d.cfg.Mailchimp.APIEndpoint == "" {
		d.addError(r, "mailchimp", "mailchimp.api_endpoint", "mailchimp.api_endpoint is required")
	}
	if d.cfg.Mailchimp.ListID == "" {
		d.addError(r, "mailchimp", "mailchimp.list_id", "mailchimp.list_id is required")
	}
	if d.cfg.Mailchimp.APIKey == "" {
		d.addError(r, "mailchimp", "mailchimp.api_key", "mailchimp.api_key is required")
	} else if !strings.Contains(d.cfg.Mailchimp.APIKey, "-") {
		d.addWarning(r, "mailchimp", "mailchimp.api_key",
			"api key has no datacenter suffix (expected key-usNN form)")
	}
}

// validateDatabase checks the calendar store settings.
func (d *Doctor) validateDatabase(r *Result) {
	db := d.cfg.Database
	if db.Host == "" {
		d.addError(r, "database", "database.host", "database.host is required")
	}
	if db.Username == "" {
		d.addError(r, "database", "database.username", "database.username is required")
	}
	if db.Name == "" {
		d.addError(r, "database", "database.name", "database.name is required")
	}
	if db.Port < 1 || db.Port > 65535 {
		d.addError(r, "database", "database.port",
			fmt.Sprintf("database port %d out of range", db.Port))
	}
}

// FormatHuman returns a human-readable validation report.
func FormatHuman(r *Result) string {
	var b strings.Builder

	if r.Valid && len(r.Warnings) == 0 {
		b.WriteString("Configuration valid.\n")
		return b.String()
	}

	if r.Valid && len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "Configuration valid (%d warning(s))\n", len(r.Warnings))
	}
	if !r.Valid {
		fmt.Fprintf(&b, "Configuration invalid (%d error(s), %d warning(s))\n", len(r.Errors), len(r.Warnings))
	}

	for _, e := range r.Errors {
		if e.Field != "" {
			fmt.Fprintf(&b, "  ERROR [%s] %s: %s\n", e.Category, e.Field, e.Message)
		} else {
			fmt.Fprintf(&b, "  ERROR [%s] %s\n", e.Category, e.Message)
		}
	}
	for _, w := range r.Warnings {
		if w.Field != "" {
			fmt.Fprintf(&b, "  WARN  [%s] %s: %s\n", w.Category, w.Field, w.Message)
		} else {
			fmt.Fprintf(&b, "  WARN  [%s] %s\n", w.Category, w.Message)
		}
	}

	return b.String()
}

// FormatJSON returns the result as indented JSON.
func FormatJSON(r *Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
