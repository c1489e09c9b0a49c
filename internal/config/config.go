package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/waterjug/internal/logging"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultMaxStates       = 10_000_000
	DefaultCacheSize       = 4096
	DefaultRedisAddr       = "localhost:6379"
	DefaultRedisPrefix     = "waterjug:solution:"

	MaxTCPPort = 65535
	EnvPrefix  = "WATERJUG_"
)

var (
	ErrInvalidPort            = errors.New("invalid port")
	ErrInvalidShutdownTimeout = errors.New("shutdown timeout must be positive")
	ErrInvalidMaxStates       = errors.New("max states cannot be negative")
	ErrInvalidCacheBackend    = errors.New("invalid cache backend")
	ErrInvalidCacheSize       = errors.New("cache size must be positive")
	ErrMissingRedisAddr       = errors.New("redis cache requires an address")
	ErrInvalidLogLevel        = errors.New("invalid log level")
)

type (
	// Config holds every setting of the waterjug service.
	Config struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		LogLevel        string        `yaml:"log_level"`

		// MaxStates bounds a single search; 0 disables the bound.
		MaxStates int `yaml:"max_states"`

		Cache CacheConfig `yaml:"cache"`
	}

	// CacheConfig selects and tunes the solution cache.
	CacheConfig struct {
		Backend string      `yaml:"backend"`
		Size    int         `yaml:"size"`
		Redis   RedisConfig `yaml:"redis"`
	}

	// RedisConfig locates the Redis server used by the "redis" backend.
	RedisConfig struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Prefix   string        `yaml:"prefix"`
		TTL      time.Duration `yaml:"ttl"`
	}
)

// NewDefaultConfig creates a configuration with sensible defaults: an
// in-memory cache and a generous search bound.
func NewDefaultConfig() *Config {
	return &Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		ShutdownTimeout: DefaultShutdownTimeout,
		LogLevel:        DefaultLogLevel,
		MaxStates:       DefaultMaxStates,
		Cache: CacheConfig{
			Backend: CacheMemory,
			Size:    DefaultCacheSize,
			Redis: RedisConfig{
				Addr:   DefaultRedisAddr,
				Prefix: DefaultRedisPrefix,
			},
		},
	}
}

// Load builds a configuration from defaults, the optional YAML file at path
// and WATERJUG_* environment variables, in that order, then validates it.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto c.
// Keys absent from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// LoadFromEnv populates configuration values from environment variables.
// Returns an error if any env var cannot be parsed.
func (c *Config) LoadFromEnv() error {
	loadEnvString("HOST", &c.Host)
	loadEnvString("LOG_LEVEL", &c.LogLevel)
	loadEnvString("CACHE", &c.Cache.Backend)
	loadEnvString("REDIS_ADDR", &c.Cache.Redis.Addr)
	loadEnvString("REDIS_PASSWORD", &c.Cache.Redis.Password)
	loadEnvString("REDIS_PREFIX", &c.Cache.Redis.Prefix)

	if err := loadEnvInt("PORT", &c.Port); err != nil {
		return err
	}
	if err := loadEnvInt("MAX_STATES", &c.MaxStates); err != nil {
		return err
	}
	if err := loadEnvInt("CACHE_SIZE", &c.Cache.Size); err != nil {
		return err
	}
	if err := loadEnvInt("REDIS_DB", &c.Cache.Redis.DB); err != nil {
		return err
	}
	if err := loadEnvDuration("REDIS_TTL", &c.Cache.Redis.TTL); err != nil {
		return err
	}
	if err := loadEnvDuration("SHUTDOWN_TIMEOUT", &c.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > MaxTCPPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxStates, c.MaxStates)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.LogLevel)
	}

	switch c.Cache.Backend {
	case CacheNone:
	case CacheMemory:
		if c.Cache.Size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCacheSize, c.Cache.Size)
		}
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return ErrMissingRedisAddr
		}
	default:
		return fmt.Errorf("%w: %s", ErrInvalidCacheBackend, c.Cache.Backend)
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

func loadEnvString(name string, target *string) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		*target = v
	}
}

func loadEnvInt(name string, target *int) error {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
	}
	*target = parsed
	return nil
}

func loadEnvDuration(name string, target *time.Duration) error {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
	}
	*target = parsed
	return nil
}
