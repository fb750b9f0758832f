package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/nevisdale/cyclenes/internal/config"
	"github.com/nevisdale/cyclenes/internal/nes"
	"golang.org/x/image/draw"
	"golang.org/x/term"
)

// runHeadless runs the configured number of frames and writes the last
// picture. Progress goes to out only when it is a terminal.
func runHeadless(console *nes.Console, cfg config.Headless, out io.Writer) error {
	interactive := false
	if f, ok := out.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	for i := 0; i < cfg.Frames; i++ {
		if err := console.StepFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if interactive && i%10 == 0 {
			fmt.Fprintf(out, "\rframe %d/%d", i, cfg.Frames)
		}
	}
	if interactive {
		fmt.Fprintf(out, "\rframe %d/%d\n", cfg.Frames, cfg.Frames)
	}

	if cfg.Screenshot == "" {
		return nil
	}
	f, err := os.Create(cfg.Screenshot)
	if err != nil {
		return fmt.Errorf("couldn't create screenshot: %w", err)
	}
	defer f.Close()
	return writeScreenshot(f, console.Screen(), cfg.Scale)
}

func writeScreenshot(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		img = scaled
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("couldn't encode screenshot: %w", err)
	}
	return nil
}
