package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	AutoMigrate    bool   `toml:"auto_migrate"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// auth
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	SessionTTL                  Duration `toml:"session_ttl"`
	SecureCookies               bool     `toml:"secure_cookies"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	// ranking aggregation cache
	RankingCacheTTL       Duration `toml:"ranking_cache_ttl"`
	RankingCacheSizeBytes int      `toml:"ranking_cache_size_bytes"`
}

// Duration lets durations be written as "168h" in the toml file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not present", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL = Duration{7 * 24 * time.Hour}
	}
	if c.RankingCacheTTL.Duration == 0 {
		c.RankingCacheTTL = Duration{30 * time.Second}
	}
	if c.RankingCacheSizeBytes == 0 {
		// freecache minimum is 512KB
		c.RankingCacheSizeBytes = 1024 * 1024
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}
