package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nevisdale/cyclenes/internal/config"
	"github.com/nevisdale/cyclenes/internal/nes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScreenshot(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, color.RGBA{255, 0, 0, 255})

	var buf bytes.Buffer
	require.NoError(t, writeScreenshot(&buf, img, 3))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 3), decoded.Bounds())
	r, _, _, _ := decoded.At(5, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, _ = decoded.At(2, 2).RGBA()
	assert.Equal(t, uint32(0), r)
}

// nrom builds a one bank NROM image whose code at $8000 is an endless loop.
func nrom() []byte {
	rom := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 0x4000)
	copy(prg, []byte{0x4c, 0x00, 0x80})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	rom = append(rom, prg...)
	return append(rom, make([]byte, 0x2000)...)
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "loop.nes")
	require.NoError(t, os.WriteFile(romPath, nrom(), 0o644))

	cart, err := nes.NewCartFromFile(romPath)
	require.NoError(t, err)
	console := nes.NewConsole()
	console.LoadCart(cart)

	shot := filepath.Join(dir, "shot.png")
	var out bytes.Buffer
	err = runHeadless(console, config.Headless{Frames: 2, Screenshot: shot, Scale: 2}, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String(), "no progress output when not on a terminal")
	assert.Equal(t, uint64(2), console.PPU().Frame())

	f, err := os.Open(shot)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}
