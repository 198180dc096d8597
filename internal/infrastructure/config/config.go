package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	SessionSecret string        `env:"SESSION_SECRET, default=dev-only-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=24h"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`
	ScanWorkers   int           `env:"SCAN_WORKERS,   default=4"`
	BcryptCost    int           `env:"BCRYPT_COST,    default=10"`

	Redis RedisConfig
	Mongo MongoConfig
}

type RedisConfig struct {
	// Addr left empty keeps sessions and scan dedup in process memory.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type MongoConfig struct {
	// URI left empty keeps scan history in process memory.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=exam_permits"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
