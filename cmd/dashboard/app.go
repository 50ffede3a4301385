package main

import (
	"context"
	"dashboard-service/internal/cache"
	"dashboard-service/internal/config"
	"dashboard-service/internal/dashboard"
	"dashboard-service/internal/logger"
	"dashboard-service/internal/repository"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// app holds everything the commands share. The store is built here and
// nowhere else.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *repository.Store
	products repository.ProductRepository
	agg      *dashboard.Aggregator
	redis    *redis.Client
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var store *repository.Store
	if cfg.SeedData {
		store = repository.NewStore()
	} else {
		store = repository.NewEmptyStore()
	}
	log.Info("store ready", zap.Bool("seeded", cfg.SeedData))

	a := &app{
		cfg:      cfg,
		logger:   log,
		store:    store,
		products: store.Products,
	}

	if cfg.CacheEnabled() {
		rdb, err := cache.ConnectRedis(ctx, cfg)
		if err != nil {
			log.Warn("redis unavailable, product cache disabled", zap.String("addr", cfg.RedisURL), zap.Error(err))
		} else {
			a.redis = rdb
			a.products = cache.NewCachedProductRepository(store.Products, rdb, cfg.RedisTTL, log.Named("cache"))
			log.Info("product cache enabled", zap.String("addr", cfg.RedisURL), zap.Duration("ttl", cfg.RedisTTL))
		}
	}

	a.agg = dashboard.NewAggregator(store.Customers, a.products, store.Orders, log.Named("dashboard"))

	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
