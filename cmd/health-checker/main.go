package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/laupow/openshift-ansible/internal/adapter/factfile"
	"github.com/laupow/openshift-ansible/internal/adapter/localfacts"
	"github.com/laupow/openshift-ansible/internal/adapter/sqlite"
	"github.com/laupow/openshift-ansible/internal/check"
	"github.com/laupow/openshift-ansible/internal/check/disk"
	"github.com/laupow/openshift-ansible/internal/config"
	"github.com/laupow/openshift-ansible/internal/logger"
	"github.com/laupow/openshift-ansible/internal/port"
)

const version = "0.1.0"

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	factsPath := flag.String("facts", "", "Path to a facts document (overrides facts.path)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(2)
	}
	if *factsPath != "" {
		cfg.Facts.Source = "file"
		cfg.Facts.Path = *factsPath
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	zapLogger := logger.GetZapLogger()
	zapLogger.Info("starting health-checker",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	host := cfg.Host.Name
	if host == "" {
		host, err = os.Hostname()
		if err != nil {
			host = "localhost"
		}
	}

	// Open result history store when configured
	var store port.ResultStore
	if cfg.Database.Path != "" {
		sqlStore, err := sqlite.Open(cfg.Database.Path)
		if err != nil {
			zapLogger.Fatal("failed to open result database", zap.Error(err), zap.String("path", cfg.Database.Path))
		}
		defer sqlStore.Close()
		store = sqlStore
	}

	// Pick the fact source
	var source port.FactSource
	switch cfg.Facts.Source {
	case "file":
		source = factfile.New(cfg.Facts.Path)
	case "local":
		source = localfacts.New(cfg.Host.GroupNames, cfg.Checks.MinHostDiskGB, cfg.Checks.PlaybookContext)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	facts, err := source.Gather(ctx)
	if err != nil {
		zapLogger.Fatal("failed to gather host facts", zap.Error(err))
	}

	// Config supplies override and context when the facts document
	// does not carry its own.
	if facts.MinHostDiskGB == nil {
		facts.MinHostDiskGB = cfg.Checks.MinHostDiskGB
	}
	if facts.PlaybookContext == "" {
		facts.PlaybookContext = cfg.Checks.PlaybookContext
	}

	runner := check.NewRunner(store, zapLogger)
	runner.Register(disk.NewAvailability(check.DisabledChecks(cfg.Checks.Disabled)))

	results := runner.Run(ctx, &check.Environment{Host: host, Facts: facts})

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	zapLogger.Info("preflight finished",
		zap.String("host", host),
		zap.String("context", string(facts.Context())),
		zap.Int("checks", len(results)),
		zap.Int("failed", failed),
	)

	if check.AnyFailed(results) {
		// Print failure details on stderr so the operator sees them
		// even when logs go elsewhere.
		for _, res := range results {
			if res.Failed() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", res.Check, res.Message)
			}
		}
		os.Exit(1)
	}
}
