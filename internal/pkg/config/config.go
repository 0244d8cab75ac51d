package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds both the issued token and its server-side record.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// ResolveTimeout bounds one profile resolution against the identity
	// boundary; past it the request fails explicitly instead of hanging.
	ResolveTimeout time.Duration `env:"RESOLVE_TIMEOUT, default=10s"`

	// IdentityBaseURL is the identity boundary the resolver fetches
	// profiles from. Empty means the built-in provider on this server.
	IdentityBaseURL string `env:"IDENTITY_BASE_URL"`

	ClassifierBaseURL string `env:"CLASSIFIER_BASE_URL, default=http://localhost:9090"`

	DetectionWorkers int `env:"DETECTION_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=veriscan"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
