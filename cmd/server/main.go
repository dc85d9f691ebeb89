// Package main - Entry point for the FinOps agent hub HTTP server
package main

import (
	"flag"
	"fmt"
	"os"

	"finops-calc/api"
	"finops-calc/core/engine"
	"finops-calc/internal/config"
	"finops-calc/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "path to configuration file (HCL or JSON)")
	addr := flag.String("addr", "", "listen address override, e.g. :10000")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	eng := engine.New(log)
	server := api.NewServer(eng, log, cfg.Server.AllowedOrigin, version)

	if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}
