package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/pkg/config"
	"github.com/chainsafe/vault-discovery/pkg/migrations/discoverydb"
	"github.com/chainsafe/vault-discovery/pkg/pgutil"
	mghelper "github.com/chainsafe/vault-discovery/pkg/pgutil/migrations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		if errors.Is(err, mghelper.ErrNoCommand) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	envFile := flag.String("env", ".env", "Optional dotenv file loaded before the configuration")
	flag.Usage = func() {
		mghelper.Usage(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		return mghelper.ErrNoCommand
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := pgutil.ConnectDB(connectCtx, &cfg.Database)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Running discovery database migrations",
		zap.String("database", cfg.Database.Database),
		zap.Strings("args", flag.Args()))

	return mghelper.Run(context.Background(), migrate.NewMigrator(db, discoverydb.Migrations), logger, flag.Args()...)
}
