package main

import (
	"context"
	"fmt"
	"time"

	"ptstudio/internal/config"
	"ptstudio/internal/db"
	"ptstudio/internal/email"
	"ptstudio/internal/events"
	"ptstudio/internal/logger"
	"ptstudio/internal/search"
	"ptstudio/internal/server"
	"ptstudio/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// app owns the process-wide clients shared by every command.
type app struct {
	cfg       *config.Config
	db        *sqlx.DB
	redis     *redis.Client
	email     *email.Service
	publisher events.Publisher
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("Database connected")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, email queue and live messaging degraded", "addr", cfg.RedisAddr, "error", err)
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.KafkaBroker != "" {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBroker)
		if err != nil {
			logger.Warn("kafka unavailable, domain events disabled", "broker", cfg.KafkaBroker, "error", err)
		} else {
			publisher = kp
		}
	}

	emailService := email.New(email.Config{
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
		SMTPHost: cfg.SMTPHost,
		SMTPPort: cfg.SMTPPort,
		SMTPUser: cfg.SMTPUser,
		SMTPPass: cfg.SMTPPass,
	}, rdb, cfg.Location())

	return &app{
		cfg:       cfg,
		db:        database,
		redis:     rdb,
		email:     emailService,
		publisher: publisher,
	}, nil
}

// deps fills the optional backends. Search and Storage stay nil interfaces
// when unconfigured so services can tell they are missing.
func (a *app) deps() server.Deps {
	deps := server.Deps{
		DB:        a.db,
		Redis:     a.redis,
		Email:     a.email,
		Publisher: a.publisher,
	}

	if a.cfg.ElasticsearchURL != "" {
		index, err := search.New(a.cfg.ElasticsearchURL)
		if err != nil {
			logger.Warn("elasticsearch unavailable, exercise search uses the database", "error", err)
		} else {
			deps.Search = index
		}
	}

	if a.cfg.StorageURL != "" {
		deps.Storage = storage.New(a.cfg.StorageURL, a.cfg.StorageBucket, a.cfg.StorageServiceKey)
	}

	return deps
}

func (a *app) Close() {
	if err := a.publisher.Close(); err != nil {
		logger.Error("failed to close event publisher", "error", err)
	}
	if err := a.email.Close(); err != nil {
		logger.Error("failed to close email service", "error", err)
	}
	if err := a.db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}
