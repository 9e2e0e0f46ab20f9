package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coinscope/src/config"
	"coinscope/src/dataset"
	"coinscope/src/interfaces"
	"coinscope/src/logger"
	"coinscope/src/server"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config.LogLevel, config.Name)

	// Setup dataset source
	var source interfaces.IDatasetSource
	switch config.Dataset.Backend {
	case "sqlite":
		source = dataset.NewSQLiteSource(config.MConfig, appLogger)
	case "postgres":
		source = dataset.NewPostgresSource(config.MConfig, appLogger)
	default:
		source = dataset.NewCSVSource(config.MConfig, appLogger)
	}

	loader := dataset.NewLoader(config.MConfig, appLogger, source)

	// Eager load; a missing dataset degrades to an empty snapshot and the
	// server still comes up.
	snap := loader.EnsureLoaded()
	appLogger.Info("Serving %d coins", snap.Count)

	// Start Server
	srv := server.NewAPIServer(config.MConfig, appLogger, loader)
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Critical("Server failed: %v", err)
		}
	}()

	// Push the initial snapshot to any early websocket clients
	srv.Broadcast()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	srv.Stop()
}
