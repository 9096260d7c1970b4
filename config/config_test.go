package config

import (
	"ggp/meta"
	"ggp/searcher"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, string(searcher.BreadthFirst), cfg.Strategy)
		require.Equal(t, meta.MAX_DEPTH, cfg.MaxDepth)
		require.Equal(t, meta.SAFETY_MARGIN, cfg.SafetyMargin)
		require.Equal(t, meta.MOVE_CLOCK, cfg.MoveClock)
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("reading a yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ggp.yaml")
		doc := "strategy: fixed-depth-lookahead\nmax_depth: 6\nsafety_margin: 250ms\nmove_clock: 2s\ngames: 4\nseed: 9\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, string(searcher.FixedDepth), cfg.Strategy)
		require.Equal(t, 6, cfg.MaxDepth)
		require.Equal(t, 250*time.Millisecond, cfg.SafetyMargin)
		require.Equal(t, 2*time.Second, cfg.MoveClock)
		require.Equal(t, 4, cfg.Games)
		require.Equal(t, uint64(9), cfg.Seed)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GGP_MAX_DEPTH", "2")
		t.Setenv("GGP_LOG_LEVEL", "debug")

		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, 2, cfg.MaxDepth)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("rejecting unknown strategies", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ggp.yaml")
		require.NoError(t, os.WriteFile(path, []byte("strategy: alpha-beta\n"), 0644))

		_, err := Setup(path)

		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})
}
