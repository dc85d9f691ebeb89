// Package main - Entry point for the FinOps calculator MCP server (stdio)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finops-calc/core/engine"
	"finops-calc/internal/config"
	"finops-calc/internal/logging"
	"finops-calc/mcp"
)

func main() {
	cfgPath := flag.String("config", "", "path to configuration file (HCL or JSON)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()

	// Logs go to stderr so stdout stays clean for the wire protocol.
	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := engine.New(log)
	server := mcp.NewServer(eng, log, os.Stdin, os.Stdout)

	if err := server.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}
