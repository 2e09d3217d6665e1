package config

import (
	"os"
	"time"
)

// Server captures process configuration. Everything is env-driven so main
// stays lean and deployments need no config files.
type Server struct {
	Addr          string
	JWTSigningKey string
	TokenTTL      time.Duration

	// RedisURL enables the persisted session snapshot store. Empty means
	// sessions live in memory only.
	RedisURL string

	// DatabaseURL selects the postgres credential directory. Empty means the
	// seeded in-memory directory.
	DatabaseURL string

	// KafkaBrokers enables the audit event producer (comma-separated).
	KafkaBrokers string

	// Seed controls whether the fixed sample data is loaded at startup.
	Seed bool

	Redis RedisConfig
}

// RedisConfig tunes the go-redis client pool.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("CAMPUSCONNECT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	redisURL := os.Getenv("REDIS_URL")

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      24 * time.Hour,
		RedisURL:      redisURL,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		KafkaBrokers:  os.Getenv("KAFKA_BROKERS"),
		Seed:          os.Getenv("CAMPUSCONNECT_SEED") != "false",
		Redis: RedisConfig{
			URL:          redisURL,
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}
