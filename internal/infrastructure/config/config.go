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

// Storage drivers for session tokens and submission locks.
const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Port         string        `env:"PORT,           default=8080"`
	Env          string        `env:"ENV,            default=development"`
	LogLevel     string        `env:"LOG_LEVEL,      default=info"`
	CookieSecret string        `env:"COOKIE_SECRET"`
	Storage      string        `env:"STORAGE_DRIVER, default=redis"`
	SessionTTL   time.Duration `env:"SESSION_TTL,    default=24h"`

	Backend     BackendConfig
	Firms       FirmsConfig
	OpenWeather OpenWeatherConfig
	OpenTopo    OpenTopoConfig
	Mongo       MongoConfig
	Redis       RedisConfig
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8000"`
	Timeout time.Duration `env:"HTTP_TIMEOUT,     default=15s"`
}

type FirmsConfig struct {
	BaseURL         string `env:"FIRMS_BASE_URL,         default=https://firms.modaps.eosdis.nasa.gov"`
	MapKey          string `env:"FIRMS_MAP_KEY"`
	DefaultSensor   string `env:"FIRMS_DEFAULT_SENSOR,   default=MODIS_NRT"`
	DefaultDays     int    `env:"FIRMS_DEFAULT_DAYS,     default=1"`
	RefreshSchedule string `env:"FIRMS_REFRESH_SCHEDULE, default=@every 15m"`
}

type OpenWeatherConfig struct {
	BaseURL string `env:"OPENWEATHER_BASE_URL, default=https://api.openweathermap.org"`
	APIKey  string `env:"OPENWEATHER_API_KEY"`
}

type OpenTopoConfig struct {
	BaseURL string `env:"OPENTOPO_BASE_URL, default=https://api.opentopodata.org"`
	Dataset string `env:"OPENTOPO_DATASET,  default=srtm90m"`
}

type MongoConfig struct {
	URI          string `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database     string `env:"MONGO_DB,      default=firewatch_portal"`
	AuditEnabled bool   `env:"AUDIT_ENABLED, default=true"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,          default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,            default=0"`
	LockTTL  time.Duration `env:"SUBMISSION_LOCK_TTL, default=30s"`
}

// IsDevelopment reports whether the portal runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate rejects settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	if c.Storage != StorageRedis && c.Storage != StorageMemory {
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageRedis, StorageMemory, c.Storage))
	}
	if !c.IsDevelopment() && len(c.CookieSecret) < 32 {
		errs = append(errs, errors.New("COOKIE_SECRET must be at least 32 bytes outside development"))
	}
	if c.Firms.DefaultDays < 1 || c.Firms.DefaultDays > 10 {
		errs = append(errs, errors.New("FIRMS_DEFAULT_DAYS must be between 1 and 10"))
	}
	return errors.Join(errs...)
}

// Load reads an optional .env file, then the environment, using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
