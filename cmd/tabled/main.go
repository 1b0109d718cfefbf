package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"goTable/internal/config"
	"goTable/internal/engine"
	"goTable/internal/logging"
	"goTable/internal/render"
	"goTable/internal/repl"
	"goTable/internal/schema"
	"goTable/internal/table"
)

func main() {
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		logger.Error("invalid output format", "error", err)
		os.Exit(1)
	}

	var initial schema.Schema
	if cfg.Table.Schema != "" {
		initial, err = schema.Parse(cfg.Table.Schema)
		if err != nil {
			logger.Error("invalid initial schema", "error", err)
			os.Exit(1)
		}
	}

	sess := engine.New(table.New(initial), logger)
	logger.Info("session started",
		"session_id", sess.ID(),
		"schema", initial.String(),
		"output", string(format),
	)

	opts := repl.Options{}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts.Prompt = cfg.Output.Prompt
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repl.Run(ctx, os.Stdin, os.Stdout, sess, render.New(format), opts); err != nil && ctx.Err() == nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
