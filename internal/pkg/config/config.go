// Package config provides runtime configuration for the admin application.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob the application reads from the environment.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	ProductsBaseURL  string
	ProductsAPIKey   string
	InventoryBaseURL string
	InventoryAPIKey  string
	RequestTimeout   time.Duration

	// RedisAddr is optional; empty means preferences are kept in memory only.
	RedisAddr     string
	RedisPassword string

	DefaultPageSize   int
	LowStockThreshold int64

	LogLevel string
}

// LoadEnv loads .env.local when APP_ENV is "local". Missing files are not fatal;
// the process falls back to the system environment.
func LoadEnv() {
	if os.Getenv("APP_ENV") != "local" {
		return
	}
	if err := godotenv.Load(".env.local"); err != nil {
		log.Printf("config: .env.local not loaded: %v", err)
	}
}

// Load collects configuration from the environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8090"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),

		ProductsBaseURL:  env("PRODUCTS_BASE_URL", "http://localhost:8081"),
		ProductsAPIKey:   env("PRODUCTS_API_KEY", ""),
		InventoryBaseURL: env("INVENTORY_BASE_URL", "http://localhost:8082"),
		InventoryAPIKey:  env("INVENTORY_API_KEY", ""),
		RequestTimeout:   durenvs("REQUEST_TIMEOUT", 10),

		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPassword: env("REDIS_PASSWORD", ""),

		DefaultPageSize:   atoienv("PAGE_SIZE", 10),
		LowStockThreshold: int64(atoienv("LOW_STOCK_THRESHOLD", 5)),

		LogLevel: env("LOG_LEVEL", "info"),
	}
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}
