// Command migrate creates the database schema and seeds the body part and equipment catalogs.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/alcyxob/fitness-ai/internal/config"
	"github.com/alcyxob/fitness-ai/internal/logging"
	"github.com/alcyxob/fitness-ai/internal/repository/postgres"

	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml and .env")
	timeout := flag.Duration("timeout", time.Minute, "give up after this long")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogToStdout:   true,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.JSON,
	})

	if err := run(cfg.Database.URL, *timeout); err != nil {
		log.Fatalf("migration failed: %s", err)
	}
	log.Println("database schema is up to date")
}

func run(dbURL string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dbPool, err := postgres.NewPool(ctx, postgres.NewPoolParams{
		URL:      dbURL,
		MaxConns: 1,
	})
	if err != nil {
		return fmt.Errorf("create db pool: %w", err)
	}
	defer dbPool.Close()

	return postgres.Migrate(ctx, dbPool)
}
