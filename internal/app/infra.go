package app

import (
	"context"

	"registrant-auth/internal/config"
	"registrant-auth/internal/db"
	"registrant-auth/internal/logger"
	"registrant-auth/internal/redis"
	"registrant-auth/internal/registrant"
	"registrant-auth/internal/session"

	migrate "github.com/rubenv/sql-migrate"
)

type Infra struct {
	DB       *db.DB
	Redis    *redis.Client
	Sessions session.Store
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.SessionBackend == config.BackendMemory {
		registrants := registrant.NewMemoryStore()
		for _, seed := range cfg.MemoryRegistrants {
			registrants.Put(registrant.Registrant{OsuID: seed.OsuID, OsuName: seed.OsuName})
		}
		logger.Warn("using in-memory session backend; sessions are lost on restart", map[string]any{
			"registrants": len(cfg.MemoryRegistrants),
		})
		infra.Sessions = session.NewMemoryStore(registrants)
		return infra, nil
	}

	sqlDB, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	infra.DB = sqlDB

	if cfg.DatabaseAutoMigrate {
		n, err := db.Migrate(sqlDB, migrate.Up)
		if err != nil {
			_ = infra.Close()
			return nil, err
		}
		logger.Info("database migrated", map[string]any{"applied": n})
	}

	logger.Info("database ready", nil)

	registrants := registrant.NewPostgresStore(sqlDB)

	switch cfg.SessionBackend {
	case config.BackendRedis:
		redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			_ = infra.Close()
			return nil, err
		}
		infra.Redis = redisClient
		infra.Sessions = session.NewRedisStore(redisClient.Client, registrants)

		logger.Info("redis ready", map[string]any{"addr": cfg.RedisAddr})
	default:
		infra.Sessions = session.NewPostgresStore(sqlDB, registrants)
	}

	return infra, nil
}

// Close releases every connection the infra holds.
func (i *Infra) Close() error {
	var firstErr error
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if i.DB != nil {
		if err := i.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
