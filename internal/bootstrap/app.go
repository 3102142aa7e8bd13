package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"accountsvc/internal/config"
	"accountsvc/internal/platform/mongodb"
	"accountsvc/internal/repository"
)

// App aggregates the process-wide resources. Store is nil when the
// database is not configured or unreachable; the HTTP layer must keep
// answering in that state.
type App struct {
	Config *config.Config
	Store  *mongodb.Store

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	var store *mongodb.Store
	if cfg.DatabaseConfigured() {
		store, err = mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Printf("database unavailable, starting degraded: %v", err)
			store = nil
		}
	} else {
		log.Printf("DATABASE_URL or DATABASE_NAME not set, starting without a database")
	}

	if store != nil {
		accounts := repository.NewAccountRepository(store)
		if err := accounts.EnsureIndexes(ctx); err != nil {
			log.Printf("ensure account indexes failed: %v", err)
		}
	}

	return &App{
		Config:    cfg,
		Store:     store,
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.Store.Close(ctx)
}
