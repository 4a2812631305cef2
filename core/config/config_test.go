package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inky/core/config"
)

type gridConfig struct {
	Columns int    `env:"CONFIG_TEST_COLUMNS" envDefault:"12"`
	Name    string `env:"CONFIG_TEST_NAME"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED"`
}

type panicConfig struct {
	Port int `env:"CONFIG_TEST_PANIC_PORT"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_COLUMNS", "16")
	t.Setenv("CONFIG_TEST_NAME", "grid")

	var cfg gridConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 16, cfg.Columns)
	assert.Equal(t, "grid", cfg.Name)
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrLoadConfig)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_Nil(t *testing.T) {
	var cfg *gridConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrLoadConfig)
}

func TestMustLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_PANIC_PORT", "not-a-number")

	assert.Panics(t, func() {
		var cfg panicConfig
		config.MustLoad(&cfg)
	})
}
