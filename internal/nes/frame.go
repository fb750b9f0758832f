package nes

import "image"

// Frame is a PixelSink that keeps the last rendered picture.
type Frame struct {
	img *image.RGBA
}

func NewFrame() *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))}
}

func (f *Frame) CommitPixel(x, y int, color uint8) {
	f.img.SetRGBA(x, y, Palette[color&0x3f])
}

// Image returns the frame buffer. It is updated in place while the PPU runs.
func (f *Frame) Image() *image.RGBA {
	return f.img
}
