package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerMode controls how the quiz submission flow commits the attempt row
// and the credit balance update.
type LedgerMode string

const (
	// LedgerBestEffort writes the attempt and the balance sequentially; a
	// balance failure leaves the attempt committed.
	LedgerBestEffort LedgerMode = "best-effort"
	// LedgerStrict wraps the attempt and the balance in a single transaction.
	LedgerStrict LedgerMode = "strict"
)

type Config struct {
	Port          string
	BindAddress   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	JWTSecret     string
	AdviceAPIURL  string
	AdviceTimeout time.Duration
	LedgerMode    LedgerMode
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		BindAddress:   getEnv("BIND_ADDRESS", "localhost"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "paisabuddy"),
		DBPassword:    getEnv("DB_PASSWORD", "paisabuddy123"),
		DBName:        getEnv("DB_NAME", "paisabuddy"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdviceAPIURL:  getEnv("ADVICE_API_URL", "http://localhost:8000"),
		AdviceTimeout: getDurationEnv("ADVICE_TIMEOUT_SECONDS", 30),
		LedgerMode:    getLedgerMode(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		log.Printf("Invalid %s value %q, using default", key, value)
	}
	return time.Duration(defaultSeconds) * time.Second
}

func getLedgerMode() LedgerMode {
	switch mode := os.Getenv("QUIZ_LEDGER_MODE"); LedgerMode(mode) {
	case LedgerStrict:
		return LedgerStrict
	case LedgerBestEffort, "":
		return LedgerBestEffort
	default:
		log.Printf("Unknown QUIZ_LEDGER_MODE %q, using best-effort", mode)
		return LedgerBestEffort
	}
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func InitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	return client
}
