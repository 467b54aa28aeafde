package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Queue    QueueConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CheckoutConfig 結帳流程的逾時與模擬授權參數
type CheckoutConfig struct {
	AuthorizationTimeout time.Duration
	AuthorizationDelay   time.Duration
	SuccessRate          float64
	SessionTTL           time.Duration
	ConfirmationTTL      time.Duration
}

type QueueConfig struct {
	Driver     string // redis | memory
	ConsumerID string
}

type SeedConfig struct {
	OnStartup bool
}

const (
	QueueDriverRedis  = "redis"
	QueueDriverMemory = "memory"
)

// LoadConfig 讀取 .env 後再讀環境變數；檔案不存在時忽略
func LoadConfig() *Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	return &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Checkout: GetCheckoutConfig(),
		Queue:    GetQueueConfig(),
		Seed: SeedConfig{
			OnStartup: getEnvAsBool("SEED_ON_STARTUP", false),
		},
	}
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Port:            "0",
			ShutdownTimeout: time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Checkout: CheckoutConfig{
			AuthorizationTimeout: 500 * time.Millisecond,
			AuthorizationDelay:   0,
			SuccessRate:          1,
			SessionTTL:           time.Minute,
			ConfirmationTTL:      time.Minute,
		},
		Queue: QueueConfig{Driver: QueueDriverMemory, ConsumerID: "test"},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		AuthorizationTimeout: getEnvAsDuration("AUTH_TIMEOUT", 5*time.Second),
		AuthorizationDelay:   getEnvAsDuration("AUTH_SIMULATED_DELAY", 2*time.Second),
		SuccessRate:          getEnvAsFloat("AUTH_SUCCESS_RATE", 0.9),
		SessionTTL:           getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		ConfirmationTTL:      getEnvAsDuration("CONFIRMATION_TTL", 15*time.Minute),
	}
}

func GetQueueConfig() QueueConfig {
	driver := getEnv("QUEUE_DRIVER", QueueDriverRedis)
	if driver != QueueDriverMemory {
		driver = QueueDriverRedis
	}
	return QueueConfig{
		Driver:     driver,
		ConsumerID: getEnv("QUEUE_CONSUMER_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

// getEnvAsDuration 接受 time.ParseDuration 格式，或純數字（秒）
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
