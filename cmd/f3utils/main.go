package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/f3stcharles/f3utils/internal/calendar"
	"github.com/f3stcharles/f3utils/internal/config"
	"github.com/f3stcharles/f3utils/internal/doctor"
	"github.com/f3stcharles/f3utils/internal/log"
	"github.com/f3stcharles/f3utils/internal/mailchimp"
	"github.com/f3stcharles/f3utils/internal/mailer"
	"github.com/f3stcharles/f3utils/internal/signup"
	"github.com/f3stcharles/f3utils/internal/slack"
	"github.com/f3stcharles/f3utils/internal/webhook"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "start":
		os.Exit(runStart(args))
	case "config":
		os.Exit(runConfigNoun(args))
	case "version":
		fmt.Printf("f3utils version %s\n", version)
		os.Exit(0)
	case "help", "--help", "-h":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`f3utils - F3 region Slack utilities

Usage:
  f3utils <command> [flags]

Commands:
  start             Start the webhook service in foreground
  config check      Validate configuration
  config lock       Authorize current config (update integrity hash)
  version           Show version information
  help              Show this help message
`)
}

func runConfigNoun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: f3utils config <check|lock> [flags]")
		return 1
	}
	switch args[0] {
	case "check":
		return runConfigCheck(args[1:])
	case "lock":
		return runConfigLock(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config action: %s\n", args[0])
		return 1
	}
}

func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DiscoverConfigPath()
}

func runStart(args []string) int {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	path, err := resolveConfigPath(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to discover config: %v\n", err)
		return 1
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel, cfg.Service.LogFormat)
	logger := log.WithComponent("main")
	logger.Info("f3utils starting", "version", version, "config", path)

	result := doctor.New(cfg).Validate()
	for _, w := range result.Warnings {
		logger.Warn("config check", "category", w.Category, "field", w.Field, "message", w.Message)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			logger.Error("config check", "category", e.Category, "field", e.Field, "message", e.Message)
		}
		return 1
	}

	verifier, err := slack.NewVerifier(cfg.Slack.SigningSecret)
	if err != nil {
		logger.Error("signing secret unusable", "error", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := calendar.Open(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to open calendar store", "host", cfg.Database.Host, "error", err)
		return 1
	}
	defer store.Close()
	logger.Info("calendar store connected", "host", cfg.Database.Host, "database", cfg.Database.Name)

	slackClient := slack.NewClient(cfg.Slack.APIKey, log.WithComponent("slack"))
	listClient := mailchimp.NewClient(cfg.Mailchimp.APIEndpoint, cfg.Mailchimp.ListID, cfg.Mailchimp.APIKey, log.WithComponent("mailchimp"))
	invites := mailer.New(mailer.Config{
		Region:         cfg.Region,
		SenderAddress:  cfg.Email.SenderAddress,
		ReplyToAddress: cfg.Email.ReplyToAddress,
		SMTPHost:       cfg.Email.SMTPHost,
		SMTPPort:       cfg.Email.SMTPPort,
		SMTPUser:       cfg.Email.SMTPUser,
		SMTPPass:       cfg.Email.SMTPPass,
		InviteLink:     cfg.Slack.InviteLink,
	}, log.WithComponent("mailer"))

	submissions := signup.New(listClient, invites, slackClient, cfg.Slack.ChannelID, log.WithComponent("signup"))
	server := webhook.New(cfg.Service.Listen, verifier, slackClient, submissions, store, log.WithComponent("webhook"))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && err != context.Canceled {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		return 1
	}

	logger.Info("f3utils stopped")
	return 0
}

func runConfigCheck(args []string) int {
	var configPath, format string
	var strict, jsonOut bool

	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "Path to configuration")
	fs.BoolVar(&strict, "strict", false, "Treat warnings as errors")
	fs.StringVar(&format, "format", "human", "Output format (human, json)")
	fs.BoolVar(&jsonOut, "json", false, "Output in JSON")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if jsonOut {
		format = "json"
	}

	path, err := resolveConfigPath(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to discover config: %v\n", err)
		return 1
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config load error: %v\n", err)
		return 1
	}

	result := doctor.New(cfg).Validate()

	switch format {
	case "json":
		out, err := doctor.FormatJSON(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "JSON format error: %v\n", err)
			return 1
		}
		fmt.Println(out)
	default:
		fmt.Print(doctor.FormatHuman(result))
	}

	if !result.Valid {
		return 1
	}
	if strict && len(result.Warnings) > 0 {
		return 2
	}
	return 0
}

func runConfigLock(args []string) int {
	var configPath string
	var dryRun bool

	fs := flag.NewFlagSet("lock", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "Path to configuration")
	fs.BoolVar(&dryRun, "dry-run", false, "Show what would change without writing")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	path, err := resolveConfigPath(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to discover config: %v\n", err)
		return 1
	}

	report, err := config.GenerateChecksums(path, dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Checksum update failed: %v\n", err)
		return 1
	}

	if report.Written {
		fmt.Printf("Locked %s (%s)\n", report.ConfigPath, report.Hash[:12])
		fmt.Printf("Checksums written to %s\n", report.ChecksumPath)
	} else {
		fmt.Printf("Dry run: would lock %s (%s)\n", report.ConfigPath, report.Hash[:12])
	}
	return 0
}
