package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go-gin-event-booking/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDatabase(config *config.DatabaseConfig) (*pgxpool.Pool, error) {
	return InitDatabaseContext(context.Background(), config)
}

func InitDatabaseContext(ctx context.Context, config *config.DatabaseConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=%s",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.DBName,
		config.SSLMode,
		"UTC",
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// 設置連接池參數
	poolConfig.MaxConns = 25                      // 最大連接數
	poolConfig.MinConns = 5                       // 最小連接數
	poolConfig.MaxConnLifetime = time.Hour        // 連接最大生命週期
	poolConfig.MaxConnIdleTime = time.Minute * 30 // 最大閒置時間

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// MigrationURL golang-migrate 使用的 pgx5:// 連線字串
func MigrationURL(config *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(config.User, config.Password),
		Host:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Path:     "/" + config.DBName,
		RawQuery: url.Values{"sslmode": {config.SSLMode}}.Encode(),
	}
	return u.String()
}
