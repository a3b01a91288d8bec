// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Command simdash is the flight telemetry dashboard: it binds a UDP
// endpoint, folds exporter samples into a live snapshot, and renders
// the cockpit view in the terminal until quit.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/simdash-project/simdash/lib/clock"
	"github.com/simdash-project/simdash/lib/config"
	"github.com/simdash-project/simdash/lib/dashui"
	"github.com/simdash-project/simdash/lib/ingest"
	"github.com/simdash-project/simdash/lib/telemetry"
	"github.com/simdash-project/simdash/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var listenFlag string
	var configPath string
	var logFile string

	flagSet := pflag.NewFlagSet("simdash", pflag.ContinueOnError)
	flagSet.StringVar(&listenFlag, "listen", "", "UDP listen address (overrides the config file)")
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $SIMDASH_CONFIG)")
	flagSet.StringVar(&logFile, "log-file", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works without a
	// valid config.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("simdash")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if listenFlag != "" {
		cfg.Listen = listenFlag
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The TUI owns the terminal, so log records go to a file or
	// nowhere. Writing to stderr would corrupt the alt-screen display.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		logger = slog.New(slog.NewJSONHandler(file, nil))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := telemetry.NewStore()
	airspeed := telemetry.NewHistory(cfg.HistorySamples)
	altitude := telemetry.NewHistory(cfg.HistorySamples)
	normalizer := telemetry.NewNormalizer(store, airspeed, altitude, clock.Real())

	// Bind before the UI starts: a bad or busy endpoint is a startup
	// failure with a plain diagnostic, not a blank dashboard.
	listener, err := ingest.Listen(cfg.Listen, normalizer, logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(dashui.NewModel(dashui.Options{
		Store:      store,
		Airspeed:   airspeed,
		Altitude:   altitude,
		Stats:      listener.Stats,
		Tick:       cfg.Tick(),
		StaleAfter: cfg.StaleAfter(),
		Endpoint:   cfg.Listen,
	}), tea.WithAltScreen())

	var receiveErr error
	receiveDone := make(chan struct{})
	go func() {
		receiveErr = listener.Run(ctx)
		close(receiveDone)
	}()

	// Route shutdown through the TUI: on a signal or a receive-loop
	// failure, quit the program so it restores the terminal before the
	// process exits.
	go func() {
		select {
		case <-ctx.Done():
		case <-receiveDone:
		}
		program.Send(dashui.ShutdownMsg{})
	}()

	logger.Info("dashboard running",
		"listen", cfg.Listen,
		"tick", cfg.Tick(),
		"stale_after", cfg.StaleAfter(),
		"history_samples", cfg.HistorySamples,
	)

	_, uiErr := program.Run()

	// Tear down the receive loop and join it before reporting.
	stop()
	<-receiveDone

	stats := listener.Stats()
	logger.Info("dashboard stopped",
		"datagrams", stats.Datagrams,
		"applied", stats.Applied,
		"malformed", stats.Malformed,
	)

	if uiErr != nil {
		return fmt.Errorf("terminal ui: %w", uiErr)
	}
	return receiveErr
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Simdash — terminal dashboard for flight simulator telemetry.

Listens for newline-delimited JSON telemetry frames on a UDP endpoint
(default 127.0.0.1:5010) and renders a live cockpit view: flight,
attitude, and systems readouts plus airspeed and altitude history
charts. Fields the exporter has not sent yet show as "---"; panels
whose data stops arriving are marked stale.

Configuration is optional. Set $SIMDASH_CONFIG to a YAML file or pass
--config; $SIMDASH_PORT overrides the default port without a file.

Keys:
  h/j/k/l, arrows   move panel focus
  f, enter          toggle fullscreen for the focused panel
  q, esc, ctrl+c    quit

Usage:
  simdash [flags]

Examples:
  # Listen on the default endpoint
  simdash

  # Listen on another port
  simdash --listen 127.0.0.1:6010

  # Use a config file and keep a debug log
  simdash --config simdash.yaml --log-file /tmp/simdash.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
