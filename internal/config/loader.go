package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, interpolates, and validates configuration from a file.
// If a .checksums manifest exists next to the file, the file is verified
// against it before the parsed config is returned.
func Load(configPath string) (*Config, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %q: %w", configPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s\n"+
			"Hint: Check the path or run with --config flag", absPath)
	}

	if info.IsDir() {
		// Directory provided - look for config.yaml inside
		absPath = filepath.Join(absPath, "config.yaml")
		if _, err := os.Stat(absPath); err != nil {
			return nil, fmt.Errorf("directory provided but config.yaml not found: %s", absPath)
		}
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Apply environment variable interpolation before parsing
	interpolated := interpolateEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(interpolated), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := verifyConfigHash(absPath); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DiscoverConfigPath finds the config file by checking standard locations.
// Priority order: $F3UTILS_CONFIG, ~/.config/f3utils/config.yaml,
// /etc/f3utils/config.yaml, ./config.yaml
func DiscoverConfigPath() (string, error) {
	if path := os.Getenv("F3UTILS_CONFIG"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(homeDir, ".config", "f3utils", "config.yaml")
		if _, err := os.Stat(userConfig); err == nil {
			return userConfig, nil
		}
	}

	systemConfig := "/etc/f3utils/config.yaml"
	if _, err := os.Stat(systemConfig); err == nil {
		return systemConfig, nil
	}

	legacyConfig := "./config.yaml"
	if _, err := os.Stat(legacyConfig); err == nil {
		return legacyConfig, nil
	}

	return "", fmt.Errorf("no config found (checked: $F3UTILS_CONFIG, ~/.config/f3utils, /etc/f3utils, ./config.yaml)")
}

// verifyConfigHash checks the config file against a .checksums manifest in
// the same directory. A missing manifest skips verification; a manifest
// without an entry for the file is an error.
func verifyConfigHash(path string) error {
	dir := filepath.Dir(path)
	checksums, err := LoadChecksums(dir)
	if err != nil {
		return nil
	}

	basename := filepath.Base(path)
	expectedHash, ok := checksums.Hashes[basename]
	if !ok {
		return fmt.Errorf("config file %s has no hash in checksums at %s\n"+
			"Run: f3utils config lock --config %s", basename, dir, path)
	}

	if err := VerifyFileHash(path, expectedHash); err != nil {
		return fmt.Errorf("config verification failed for %s: %w\n"+
			"If you edited this file intentionally, run: f3utils config lock --config %s", path, err, path)
	}

	return nil
}

// applyDefaults merges default values into config where not explicitly set.
func applyDefaults(cfg *Config) {
	defaults := Defaults()

	if cfg.Service.Listen == "" {
		cfg.Service.Listen = defaults.Service.Listen
	}
	if cfg.Service.LogLevel == "" {
		cfg.Service.LogLevel = defaults.Service.LogLevel
	}
	if cfg.Service.LogFormat == "" {
		cfg.Service.LogFormat = defaults.Service.LogFormat
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaults.Database.Port
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = defaults.Email.SMTPPort
	}
}

// interpolateEnv replaces ${VAR} with environment variable values.
// Undefined variables are left as-is (not expanded).
func interpolateEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}

		// If not found, leave the placeholder (will fail validation if required)
		return match
	})
}

// validate performs basic validation on the configuration.
func validate(cfg *Config) error {
	if cfg.Service.Listen == "" {
		return fmt.Errorf("service.listen is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[cfg.Service.LogLevel] {
		return fmt.Errorf("service.log_level must be one of: debug, info, warn, error (got %q)", cfg.Service.LogLevel)
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[cfg.Service.LogFormat] {
		return fmt.Errorf("service.log_format must be one of: json, text (got %q)", cfg.Service.LogFormat)
	}

	if cfg.Region == "" {
		return fmt.Errorf("region is required")
	}

	required := []struct {
		field string
		value string
	}{
		{"email.sender_address", cfg.Email.SenderAddress},
		{"email.reply_to_address", cfg.Email.ReplyToAddress},
		{"email.smtp_host", cfg.Email.SMTPHost},
		{"database.host", cfg.Database.Host},
		{"database.username", cfg.Database.Username},
		{"database.name", cfg.Database.Name},
		{"mailchimp.api_endpoint", cfg.Mailchimp.APIEndpoint},
		{"mailchimp.list_id", cfg.Mailchimp.ListID},
		{"mailchimp.api_key", cfg.Mailchimp.APIKey},
		{"slack.api_key", cfg.Slack.APIKey},
		{"slack.channel_id", cfg.Slack.ChannelID},
		{"slack.signing_secret", cfg.Slack.SigningSecret},
		{"slack.invite_link", cfg.Slack.InviteLink},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.field)
		}
	}

	// Check for unresolved env vars (security: no placeholders serving as secrets)
	secrets := []struct {
		field string
		value string
	}{
		{"database.password", cfg.Database.Password},
		{"mailchimp.api_key", cfg.Mailchimp.APIKey},
		{"slack.api_key", cfg.Slack.APIKey},
		{"slack.signing_secret", cfg.Slack.SigningSecret},
		{"email.smtp_pass", cfg.Email.SMTPPass},
	}
	for _, s := range secrets {
		if envVarPattern.MatchString(s.value) {
			matches := envVarPattern.FindStringSubmatch(s.value)
			if len(matches) > 1 {
				return fmt.Errorf("%s: environment variable ${%s} is not set", s.field, matches[1])
			}
			return fmt.Errorf("%s: unresolved environment variable", s.field)
		}
	}

	return nil
}
