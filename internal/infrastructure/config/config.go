package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, loaded from the environment.
//
// JWT_SECRET is deliberately required with no default: the process refuses to
// start without a signing secret in any environment.
type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	CORS  CORSConfig
	Login LoginConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=social_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// CORSConfig is the injected origin policy: an enumerated allow-list plus
// whether credentialed requests are permitted. No origins are hardcoded.
type CORSConfig struct {
	AllowOrigins     []string `env:"CORS_ALLOW_ORIGINS,     default=http://localhost:3000"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS, default=true"`
}

// LoginConfig tunes the failed-login throttle.
type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS,   default=10"`
	Window      time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables. It returns an error
// (rather than falling back) when required settings are absent.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
