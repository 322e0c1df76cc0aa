package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	Address string `env:"ADDRESS" envDefault:":8083"`
	Env     string `env:"ENV" envDefault:"local"`

	// An empty key routes every stylist call to its fallback.
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	SentryDSN    string `env:"SENTRY_DSN"`

	StoreEngine string `env:"STORE_ENGINE" envDefault:"sqlite"`
	StorePath   string `env:"STORE_PATH" envDefault:"data/smartcloset.db"`

	DBUsername string `env:"DB_USERNAME"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`

	AsyncBrokerAddress string `env:"ASYNC_BROKER_ADDRESS"`
	WorkerConcurrency  int    `env:"WORKER_CONCURRENCY" envDefault:"5"`

	SessionDelay     time.Duration `env:"SESSION_DELAY" envDefault:"800ms"`
	AnalysisCacheTTL time.Duration `env:"ANALYSIS_CACHE_TTL" envDefault:"10m"`
	SeedWardrobe     bool          `env:"SEED_WARDROBE" envDefault:"true"`
	FirebaseEnabled  bool          `env:"FIREBASE_ENABLED" envDefault:"false"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) AsyncEnabled() bool {
	return c.AsyncBrokerAddress != ""
}
