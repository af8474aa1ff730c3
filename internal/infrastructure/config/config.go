package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Session store backends.
const (
	SessionBackendFile   = "file"
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
	SessionBackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// BackendConfig locates the two remote functions.
type BackendConfig struct {
	AuthURL         string `env:"AUTH_ENDPOINT,         default=https://functions.poehali.dev/2758dce7-daba-47a2-8eeb-576ee0ff7eef"`
	ProvisioningURL string `env:"PROVISIONING_ENDPOINT, default=https://functions.poehali.dev/2a18a4fe-2172-4713-8370-27b940f82870"`
	// Timeout bounds every backend call; 0 disables the bound.
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=0s"`
}

type SessionConfig struct {
	Backend       string `env:"SESSION_BACKEND,        default=file"`
	FilePath      string `env:"SESSION_FILE,           default=.storefront/session.json"`
	Profile       string `env:"SESSION_PROFILE,        default=default"`
	RejectExpired bool   `env:"SESSION_REJECT_EXPIRED, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront_client"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
// Variables from a .env file in the working directory are applied first when
// the file exists; real environment variables take precedence.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case SessionBackendFile, SessionBackendMemory, SessionBackendRedis, SessionBackendMongo:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	if c.Backend.AuthURL == "" || c.Backend.ProvisioningURL == "" {
		return errors.New("config: backend endpoints must not be empty")
	}
	if c.Backend.Timeout < 0 {
		return errors.New("config: BACKEND_TIMEOUT must not be negative")
	}
	return nil
}
