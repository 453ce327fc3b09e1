// Package config loads and validates the f3utils YAML configuration.
package config

import "fmt"

// Config is the root configuration, loaded once at startup and treated as
// immutable afterwards.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Region    string          `yaml:"region"`
	Email     EmailConfig     `yaml:"email"`
	Database  DatabaseConfig  `yaml:"database"`
	Mailchimp MailchimpConfig `yaml:"mailchimp"`
	Slack     SlackConfig     `yaml:"slack"`
}

// ServiceConfig holds HTTP server and logging settings.
type ServiceConfig struct {
	// Listen is the bind address, e.g. "0.0.0.0:8080"
	Listen string `yaml:"listen"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogFormat is "json" or "text"
	LogFormat string `yaml:"log_format"`
}

// EmailConfig holds the SMTP relay and addressing for invite emails.
type EmailConfig struct {
	SenderAddress  string `yaml:"sender_address"`
	ReplyToAddress string `yaml:"reply_to_address"`
	SMTPHost       string `yaml:"smtp_host"`
	SMTPPort       int    `yaml:"smtp_port"`
	SMTPUser       string `yaml:"smtp_user,omitempty"`
	SMTPPass       string `yaml:"smtp_pass,omitempty"`
}

// DatabaseConfig holds connection parameters for the Q-signup MySQL store.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// DSN renders the go-sql-driver connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", d.Username, d.Password, d.Host, d.Port, d.Name)
}

// MailchimpConfig holds the mailing-list API settings.
type MailchimpConfig struct {
	// APIEndpoint is the datacenter host, e.g. "us14.api.mailchimp.com"
	APIEndpoint string `yaml:"api_endpoint"`
	ListID      string `yaml:"list_id"`
	APIKey      string `yaml:"api_key"`
}

// SlackConfig holds the chat-platform credentials and targets.
type SlackConfig struct {
	APIKey        string `yaml:"api_key"`
	ChannelID     string `yaml:"channel_id"`
	SigningSecret string `yaml:"signing_secret"`
	InviteLink    string `yaml:"invite_link"`
}

// Defaults returns the configuration defaults applied before validation.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Listen:    "127.0.0.1:8080",
			LogLevel:  "info",
			LogFormat: "json",
		},
		Database: DatabaseConfig{
			Port: 3306,
		},
		Email: EmailConfig{
			SMTPPort: 587,
		},
	}
}
