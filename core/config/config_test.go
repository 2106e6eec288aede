package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/centrifuge/core/config"
)

type hubTestConfig struct {
	URL     string        `env:"CFG_TEST_HUB_URL" envDefault:"http://localhost:8000"`
	Secret  string        `env:"CFG_TEST_HUB_SECRET,required"`
	Shards  int           `env:"CFG_TEST_HUB_SHARDS" envDefault:"0"`
	Timeout time.Duration `env:"CFG_TEST_HUB_TIMEOUT" envDefault:"10s"`
}

func TestLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CFG_TEST_HUB_SECRET", "s3cr3t")
	t.Setenv("CFG_TEST_HUB_SHARDS", "4")

	var cfg hubTestConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:8000", cfg.URL)
	assert.Equal(t, "s3cr3t", cfg.Secret)
	assert.Equal(t, 4, cfg.Shards)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("CFG_TEST_HUB_SECRET", "first")

	var first hubTestConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_HUB_SECRET", "second")

	var second hubTestConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Secret)

	config.Reset()

	var third hubTestConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Secret)
}

type requiredTestConfig struct {
	Value string `env:"CFG_TEST_REQUIRED_VALUE,required"`
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredTestConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}
