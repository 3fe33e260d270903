package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lsangers/codingame/agent"
	"github.com/lsangers/codingame/config"
	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/rules"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	// stdout belongs to the judge; everything diagnostic goes to stderr.
	setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := setupLogger(cfg.LogLevel); err != nil {
		slog.Error("invalid log level", "level", cfg.LogLevel, "error", err)
		os.Exit(1)
	}

	policy, err := rules.NewPolicy(cfg)
	if err != nil {
		slog.Error("failed to build policy", "policy", cfg.Policy, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting agent", "policy", cfg.Policy)

	a := agent.New(ipc.NewConnection(os.Stdin, os.Stdout), policy, cfg.OpponentBase)
	// Serve returns on SIGINT/SIGTERM even while stdin is blocked.
	if err := a.Serve(ctx); err != nil {
		slog.Error("agent stopped", "match", a.MatchID, "error", err)
		stop()
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return nil
}
