package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig

	// SeedDir holds per-collection bootstrap JSON files (users.json,
	// cases.json). Missing files are logged and skipped.
	SeedDir string `env:"SEED_DIR, default=db/init"`
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=24h"`
}

type MongoConfig struct {
	// URI, when set, is used verbatim (local development). Otherwise the
	// connection string is built from the cluster credentials below.
	URI      string `env:"MONGO_URI"`
	Username string `env:"MONGO_USERNAME"`
	Password string `env:"MONGO_PASSWORD"`
	Cluster  string `env:"MONGO_CLUSTER"`
	AppName  string `env:"MONGO_APP_NAME"`
	Database string `env:"MONGO_DB, default=genvoice_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
