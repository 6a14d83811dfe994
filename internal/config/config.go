// config - источник загрузки конфигурации для hbnb-web.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Metrics  MetricsConfig `yaml:"metrics"`
	Backend  BackendConfig `yaml:"backend"`
	Session  SessionConfig `yaml:"session"`
	Cache    CacheConfig   `yaml:"cache"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — общий дедлайн запроса и дедлайн одного вызова бэкенда.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"15s"`
	Backend time.Duration `yaml:"backend" env:"BACKEND_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — публичный сервер со страницами.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// MetricsConfig — отдельный HTTP для Prometheus.
type MetricsConfig struct {
	Host string `yaml:"host"   env:"METRICS_HOST"   env-default:"0.0.0.0"`
	Port string `yaml:"port"   env:"METRICS_PORT"   env-default:"9090"`
}

func (m MetricsConfig) Addr() string { return net.JoinHostPort(m.Host, m.Port) }

// BackendConfig — REST API HBnB.
// ReviewsPath вынесен в конфиг: разные версии API отдают /reviews и /reviews/.
type BackendConfig struct {
	BaseURL     string `yaml:"base_url"     env:"BACKEND_URL"          env-default:"http://127.0.0.1:5000"`
	ReviewsPath string `yaml:"reviews_path" env:"BACKEND_REVIEWS_PATH" env-default:"/api/v1/reviews/"`
	UserAgent   string `yaml:"user_agent"   env:"BACKEND_USER_AGENT"   env-default:"hbnb-web"`
}

// SessionConfig — cookie с access-токеном.
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE" env-default:"token"`
	TTL        time.Duration `yaml:"ttl"         env:"SESSION_TTL"    env-default:"1h"`
}

// CacheConfig — кэш анонимного списка мест в Redis.
// Пустой RedisURL отключает кэш.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"    env-default:""`
	TTL      time.Duration `yaml:"ttl"       env:"CACHE_TTL"    env-default:"30s"`
	Prefix   string        `yaml:"prefix"    env:"CACHE_PREFIX" env-default:"hbnb:places:"`
}

// Enabled — включён ли кэш.
func (c CacheConfig) Enabled() bool { return c.RedisURL != "" && c.TTL > 0 }

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		return validated(&cfg)
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return validated(&cfg)
}

// validated проверяет то, что cleanenv проверить не может.
func validated(cfg *Config) (*Config, error) {
	u, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid backend.base_url %q", cfg.Backend.BaseURL)
	}

	if !strings.HasPrefix(cfg.Backend.ReviewsPath, "/") {
		return nil, fmt.Errorf("invalid backend.reviews_path %q: must start with /", cfg.Backend.ReviewsPath)
	}

	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("invalid session.ttl %s", cfg.Session.TTL)
	}

	return cfg, nil
}
