package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sitesift/internal/config"
	"sitesift/internal/eventbus"
	"sitesift/internal/suggest"
	"sitesift/internal/ui"
)

func main() {
	var (
		configPath string
		endpoint   string
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&endpoint, "endpoint", "", "Suggest API base URL (overrides config)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := setupLogging(debug); err != nil {
		fmt.Fprintf(os.Stderr, "could not set up logging: %v\n", err)
	}
	defer func() { _ = zap.L().Sync() }()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		zap.S().Warnw("error loading config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	client, err := suggest.NewClient(cfg.Endpoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid suggest endpoint: %v\n", err)
		os.Exit(1)
	}

	// Create event bus and services
	bus := eventbus.New()
	svc := suggest.NewService(ctx, bus, client)

	// Create UI model
	uiModel := ui.NewModel(cfg, bus, client.Origin(), client)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward search events from the bus into the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			zap.S().Warn("event channel full, dropping event")
		}
	}
	unsubscribe := []func(){
		bus.Subscribe(eventbus.EventSuggestionsArrived, forward),
		bus.Subscribe(eventbus.EventSearchFailed, forward),
		bus.Subscribe(eventbus.EventHealthChecked, forward),
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Probe the backend in the background; a dead backend only warns
	go svc.CheckHealth()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup. The channel is left open: a handler already dispatched may
	// still hold a reference, and the process is exiting anyway.
	for _, u := range unsubscribe {
		u()
	}
	cancel()
}

// setupLogging writes structured logs to sitesift.log; stdout belongs to
// the TUI.
func setupLogging(debug bool) error {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"sitesift.log"}
	zcfg.ErrorOutputPaths = []string{"sitesift.log"}

	logger, err := zcfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
