package app

import (
	"context"
	"time"

	"mentorlink/internal/config"
	"mentorlink/internal/database"
	"mentorlink/internal/database/migration"
	dbpostgres "mentorlink/internal/database/postgres"
	"mentorlink/internal/infrastructure/cache"
	"mentorlink/internal/pkg/logger"
	"mentorlink/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Log    logger.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	log := logger.New(cfg.App.AppName, cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(log)
	go hub.Run()

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, log),
		Hub:    hub,
		Log:    log,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
