package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SessionBackendRedis  = "redis"
	SessionBackendSQLite = "sqlite"
)

type Config struct {
	Env       string `yaml:"env" env:"APP_ENV" env-default:"local"`
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"debug"`
	HTTP      `yaml:"http"`
	API       `yaml:"api"`
	Session   `yaml:"session"`
	Telemetry `yaml:"telemetry"`
}

type HTTP struct {
	Address         string        `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// API describes the remote resort API the front end talks to.
type API struct {
	BaseURL  string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8000"`
	Timeout  time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
	PageSize int           `yaml:"page_size" env:"PAGE_SIZE" env-default:"20"`
}

type Session struct {
	Backend      string        `yaml:"backend" env:"SESSION_BACKEND" env-default:"redis"`
	TTL          time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	Secret       string        `yaml:"secret" env:"SESSION_SECRET" env-default:"local_dev_session_secret"`
	CookieSecure bool          `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false"`
	RedisAddr    string        `yaml:"redis_addr" env:"REDIS_CONNSTRING" env-default:"localhost:6379"`
	SQLitePath   string        `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"./sessions.db"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_ENDPOINT" env-default:"otel-collector:4317"`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"resort-web"`
}

// MustLoad reads the config file at path when one is given and the environment
// otherwise. It panics when the result is unusable.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(cfg.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("API base URL must be absolute, got: %q", cfg.API.BaseURL))
	}
	if cfg.API.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("API timeout must be positive, got: %s", cfg.API.Timeout))
	}
	if cfg.API.PageSize <= 0 {
		problems = append(problems, fmt.Sprintf("page size must be positive, got: %d", cfg.API.PageSize))
	}
	switch cfg.Session.Backend {
	case SessionBackendRedis:
		if cfg.Session.RedisAddr == "" {
			problems = append(problems, "redis address cannot be empty")
		}
	case SessionBackendSQLite:
		if cfg.Session.SQLitePath == "" {
			problems = append(problems, "sqlite path cannot be empty")
		}
	default:
		problems = append(problems, fmt.Sprintf("session backend must be %q or %q, got: %q",
			SessionBackendRedis, SessionBackendSQLite, cfg.Session.Backend))
	}
	if cfg.Session.TTL <= 0 {
		problems = append(problems, fmt.Sprintf("session TTL must be positive, got: %s", cfg.Session.TTL))
	}
	if len(cfg.Session.Secret) < 16 {
		problems = append(problems, "session secret must be at least 16 bytes")
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("shutdown timeout must be positive, got: %s", cfg.HTTP.ShutdownTimeout))
	}

	if len(problems) > 0 {
		msg := "configuration validation failed:\n"
		for i, p := range problems {
			msg += fmt.Sprintf("  %d. %s\n", i+1, p)
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}
