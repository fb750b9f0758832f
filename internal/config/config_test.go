package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty file gives defaults", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader(`
scale: 3
debug: true
keys:
  a: K
headless:
  frames: 120
  screenshot: out.png
`))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Scale)
		assert.True(t, cfg.Debug)
		assert.Equal(t, 60, cfg.TPS)
		assert.Equal(t, "K", cfg.Keys["a"])
		assert.Equal(t, "Z", cfg.Keys["b"], "other keys keep their defaults")
		assert.Equal(t, 120, cfg.Headless.Frames)
		assert.Equal(t, "out.png", cfg.Headless.Screenshot)
		assert.Equal(t, 1, cfg.Headless.Scale)
	})

	t.Run("errors", func(t *testing.T) {
		for name, in := range map[string]string{
			"scale":          "scale: 0",
			"tps":            "tps: -1",
			"unknown field":  "volume: 3",
			"unknown button": "keys:\n  turbo: T",
			"headless scale": "headless:\n  scale: 9",
			"syntax":         "scale: [",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(strings.NewReader(in))
				assert.Error(t, err)
			})
		}
	})
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "nes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tps: 50\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.TPS)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Trace = "trace.log"

	var buf bytes.Buffer
	require.NoError(t, cfg.Save(&buf))

	loaded, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
