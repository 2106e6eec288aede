package hub

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cast"
)

// Config holds the hub connection settings. It is read-only once passed to New.
type Config struct {
	URL            string        `env:"CENTRIFUGE_URL" envDefault:"http://localhost:8000"`
	Secret         string        `env:"CENTRIFUGE_SECRET"`
	RedisAPI       bool          `env:"CENTRIFUGE_REDIS_API" envDefault:"false"`
	RedisPrefix    string        `env:"CENTRIFUGE_REDIS_PREFIX" envDefault:"centrifugo"`
	RedisNumShards int           `env:"CENTRIFUGE_REDIS_NUM_SHARDS" envDefault:"0"`
	HTTPTimeout    time.Duration `env:"CENTRIFUGE_HTTP_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns the defaults used for keys missing from a config map.
// Secret has no default.
func DefaultConfig() Config {
	return Config{
		URL:            "http://localhost:8000",
		RedisAPI:       false,
		RedisPrefix:    "centrifugo",
		RedisNumShards: 0,
		HTTPTimeout:    10 * time.Second,
	}
}

// ConfigFromMap applies the recognized keys of m over DefaultConfig:
// url, secret, redis_api, redis_prefix, redis_num_shards and http_timeout.
// Other keys are ignored.
func ConfigFromMap(m map[string]any) (Config, error) {
	cfg := DefaultConfig()

	var err error
	for key, value := range m {
		switch key {
		case "url":
			cfg.URL, err = cast.ToStringE(value)
		case "secret":
			cfg.Secret, err = cast.ToStringE(value)
		case "redis_api":
			cfg.RedisAPI, err = cast.ToBoolE(value)
		case "redis_prefix":
			cfg.RedisPrefix, err = cast.ToStringE(value)
		case "redis_num_shards":
			cfg.RedisNumShards, err = cast.ToIntE(value)
		case "http_timeout":
			cfg.HTTPTimeout, err = cast.ToDurationE(value)
		default:
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
		}
	}

	return cfg, nil
}

// Validate reports configuration defects that would make every call fail.
func (c Config) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("%w: secret is required", ErrInvalidConfig)
	}

	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: invalid url %q", ErrInvalidConfig, c.URL)
	}

	if c.RedisNumShards < 0 {
		return fmt.Errorf("%w: redis_num_shards must not be negative", ErrInvalidConfig)
	}
	if c.RedisAPI && c.RedisPrefix == "" {
		return fmt.Errorf("%w: redis_prefix is required when redis_api is enabled", ErrInvalidConfig)
	}

	return nil
}
