package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tatianab/island/internal/config"
	"github.com/tatianab/island/internal/engine"
	"github.com/tatianab/island/internal/logging"
	"github.com/tatianab/island/internal/mcpserver"
	"github.com/tatianab/island/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to island.yaml (optional)")
	mode := flag.String("mode", "", "Front end: auto, tui or plain (overrides ui.mode)")
	serveMCP := flag.Bool("mcp", false, "Serve the game as an MCP tool over Streamable HTTP")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.UI.Mode = *mode
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	newGame := func() *engine.Game {
		return engine.NewGame(engine.WithLogger(logger))
	}

	if err := run(context.Background(), cfg, *serveMCP, newGame, logger); err != nil {
		logger.Error("exiting", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, serveMCP bool, newGame func() *engine.Game, logger *zap.Logger) error {
	if serveMCP {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Printf("Serving MCP on http://%s%s\n", cfg.MCP.Addr, cfg.MCP.Path)
		return mcpserver.New(newGame, logger).ListenAndServe(ctx, cfg.MCP)
	}

	useTUI := cfg.UI.Mode == config.ModeTUI
	if cfg.UI.Mode == config.ModeAuto {
		useTUI = term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	if useTUI {
		return tui.Run(newGame, cfg.UI.AltScreen)
	}

	status, err := newGame().Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	logger.Info("plain session finished", zap.Stringer("status", status))
	return nil
}
