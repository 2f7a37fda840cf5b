package config

import (
	"os"      // For environment variables
	"strconv" // For string to number conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	Port           string        // HTTP listen port
	Env            string        // development or production
	DatabaseURL    string        // MySQL DSN
	AutoMigrate    bool          // Create missing tables on start
	RedisAddr      string        // Redis server address, empty disables caching
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	CacheTTL       time.Duration // Lifetime of cached documents
	RateLimitRPS   float64       // Requests per second per IP, 0 disables limiting
	RateLimitBurst int           // Burst size per IP
	CORSOrigins    []string      // Allowed origins
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		Port:           getEnv("PORT", "3000"),
		Env:            getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
		DatabaseURL:    getEnv("DATABASE_URL", dsnFromParts()),
		AutoMigrate:    getEnvBool("AUTO_MIGRATE", true),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		CacheTTL:       getEnvDuration("CACHE_TTL", time.Minute),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

// IsDevelopment reports whether error details may be exposed
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// dsnFromParts builds a MySQL DSN from DB_* variables
func dsnFromParts() string {
	user := getEnv("DB_USER", "root")
	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "3306")
	name := getEnv("DB_NAME", "store_api")
	return user + ":" + os.Getenv("DB_PASSWORD") + "@tcp(" + host + ":" + port + ")/" + name + "?charset=utf8mb4&parseTime=true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
