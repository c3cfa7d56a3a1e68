package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/miles-w-3/signpad/internal/account"
	"github.com/miles-w-3/signpad/internal/clipboard"
	"github.com/miles-w-3/signpad/internal/config"
	"github.com/miles-w-3/signpad/internal/signing"
	"github.com/miles-w-3/signpad/internal/theme"
	"github.com/miles-w-3/signpad/internal/ui"
)

func main() {
	// Env files must be loaded before flags read their env fallbacks
	if _, err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:   "signpad",
		Usage:  "Sign messages with a remote node key from the terminal",
		Flags:  config.Flags(),
		Action: run,
	}

	// Cancel the program on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tracker, err := ui.NewErrorTracker(cfg.LogFile, cfg.SlogLevel())
	if err != nil {
		return err
	}
	defer tracker.Close()

	logger := tracker.Logger()
	logger.Info("Starting signpad", "endpoint", cfg.Endpoint)

	provider, err := loadAccount(cfg)
	if err != nil {
		return err
	}

	signer, err := signing.NewClient(&signing.ClientConfig{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
		Headers:  cfg.HTTPHeaders(),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create signing client: %w", err)
	}

	writer := clipboard.Default()
	if !clipboard.SystemAvailable() {
		logger.Warn("No system clipboard found, copying through the terminal (OSC 52)")
	}

	theme.Apply(cfg.ThemeMode())

	model := ui.NewModel(ui.Options{
		Endpoint:      cfg.Endpoint,
		Signer:        signer,
		Account:       provider,
		Clipboard:     writer,
		Errors:        tracker,
		Logger:        logger,
		ToastDuration: cfg.ToastDuration,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(c.Context))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("Interrupted, shutting down")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

func loadAccount(cfg *config.Config) (account.Provider, error) {
	var provider *account.Static
	var err error

	if cfg.AuthJSON != "" {
		provider, err = account.FromJSON(cfg.AuthJSON)
	} else {
		provider, err = account.LoadFile(cfg.AccountFile)
	}
	if err != nil {
		return nil, err
	}
	return provider, nil
}
