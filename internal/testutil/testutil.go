package testutil

import (
	"context"
	"fmt"
	"time"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDatabase 連線測試 DB 並套用 migration；連不上時回傳 error，由呼叫端決定是否略過
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pool, err := database.InitDatabaseContext(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	if err := database.Migrate(&cfg.Database); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return pool, pool.Close, nil
}

// SetupRedisOnly 僅初始化 Redis，用於只依賴 Redis 的整合測試（如 stream queue）
func SetupRedisOnly() (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	cleanup := func() { _ = rdb.Close() }
	return rdb, cleanup, nil
}
