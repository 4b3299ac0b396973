package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	level    int
	name     string
	cache    bool
	lastCall string
}

func (c *codecConfig) setLevel(v int) error {
	if v < 0 {
		return errors.New("level cannot be negative")
	}
	c.level = v
	c.lastCall = "setLevel"

	return nil
}

func (c *codecConfig) setName(name string) {
	c.name = name
	c.lastCall = "setName"
}

func (c *codecConfig) setCache(enabled bool) {
	c.cache = enabled
	c.lastCall = "setCache"
}

func withLevel(v int) Option[*codecConfig] {
	return New(func(c *codecConfig) error { return c.setLevel(v) })
}

func withName(name string) Option[*codecConfig] {
	return NoError(func(c *codecConfig) { c.setName(name) })
}

func withCache(enabled bool) Option[*codecConfig] {
	return NoError(func(c *codecConfig) { c.setCache(enabled) })
}

func TestNew(t *testing.T) {
	cfg := &codecConfig{}

	t.Run("applies value", func(t *testing.T) {
		require.NoError(t, withLevel(3).apply(cfg))
		require.Equal(t, 3, cfg.level)
		require.Equal(t, "setLevel", cfg.lastCall)
	})

	t.Run("propagates error", func(t *testing.T) {
		err := withLevel(-1).apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
		require.Equal(t, 3, cfg.level)
	})
}

func TestNoError(t *testing.T) {
	cfg := &codecConfig{}
	require.NoError(t, withName("key").apply(cfg))
	require.Equal(t, "key", cfg.name)
	require.NoError(t, withCache(true).apply(cfg))
	require.True(t, cfg.cache)
	require.Equal(t, "setCache", cfg.lastCall)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(10), withName("hfm"), withCache(true))
		require.NoError(t, err)
		require.Equal(t, 10, cfg.level)
		require.Equal(t, "hfm", cfg.name)
		require.True(t, cfg.cache)
		require.Equal(t, "setCache", cfg.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}
		err := Apply(cfg, withLevel(5), withLevel(-1), withName("unreached"))
		require.Error(t, err)
		require.Equal(t, 5, cfg.level)
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &codecConfig{}
		require.NoError(t, Apply(cfg))
		require.Zero(t, cfg.level)
	})

	t.Run("primitive target", func(t *testing.T) {
		var width int
		require.NoError(t, Apply(&width, NoError(func(n *int) { *n = 7 })))
		require.Equal(t, 7, width)
	})
}
