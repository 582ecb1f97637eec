package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/revolutionary-ui/revui/internal/cli"
	"github.com/revolutionary-ui/revui/internal/config"
	mcpserver "github.com/revolutionary-ui/revui/internal/mcp"
	"github.com/revolutionary-ui/revui/internal/session"
	"github.com/revolutionary-ui/revui/internal/store"
)

func main() {
	// stdio carries JSON-RPC, never ANSI colors
	cli.ColorEnabled = false

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "revui-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if len(os.Args) > 1 {
		cfg.Canvas = os.Args[1]
	}

	// stdout carries the protocol; logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	st, err := store.Open(cfg.DatabasePath(dir), logger)
	if err != nil {
		return fmt.Errorf("open canvas database: %w", err)
	}
	defer st.Close()

	settings := cfg.Builder
	sess, err := session.Load(context.Background(), st, session.Options{
		Name:      cfg.Canvas,
		Width:     cfg.Drag.CanvasWidth,
		Proximity: cfg.Drag.Proximity,
		Settings:  &settings,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("load canvas %s: %w", cfg.Canvas, err)
	}

	srv := mcpserver.New(mcpserver.Deps{
		Session: sess,
		Store:   st,
		Export:  cfg.Export,
		Logger:  logger,
	})
	return srv.ServeStdio()
}
