package nes

import (
	"image"
	"image/color"
)

// Palette is the 64 entry master palette the PPU color indexes refer to.
var Palette [64]color.RGBA

func init() {
	colors := []uint32{
		0x666666, 0x002A88, 0x1412A7, 0x3B00A4, 0x5C007E, 0x6E0040, 0x6C0600, 0x561D00,
		0x333500, 0x0B4800, 0x005200, 0x004F08, 0x00404D, 0x000000, 0x000000, 0x000000,
		0xADADAD, 0x155FD9, 0x4240FF, 0x7527FE, 0xA01ACC, 0xB71E7B, 0xB53120, 0x994E00,
		0x6B6D00, 0x388700, 0x0C9300, 0x008F32, 0x007C8D, 0x000000, 0x000000, 0x000000,
		0xFFFEFF, 0x64B0FF, 0x9290FF, 0xC676FF, 0xF36AFF, 0xFE6ECC, 0xFE8170, 0xEA9E22,
		0xBCBE00, 0x88D800, 0x5CE430, 0x45E082, 0x48CDDE, 0x4F4F4F, 0x000000, 0x000000,
		0xFFFEFF, 0xC0DFFF, 0xD3D2FF, 0xE8C8FF, 0xFBC2FF, 0xFEC4EA, 0xFECCC5, 0xF7D8A5,
		0xE4E594, 0xCFEF96, 0xBDF4AB, 0xB3F3CC, 0xB5EBF2, 0xB8B8B8, 0x000000, 0x000000,
	}
	for i, c := range colors {
		Palette[i] = color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
	}
}

// PaletteColor returns the RGB color of entry i (0-3) of palette pal (0-7)
// as currently held in palette RAM.
func (p *PPU) PaletteColor(pal, i uint8) color.RGBA {
	addr := paletteAddr + uint16(pal&0x7)<<2 + uint16(i&0x3)
	return Palette[p.readPalette(addr)&0x3f]
}

// PatternTable renders one of the two 128x128 pattern tables with the
// given palette. It is meant for debug views.
func (p *PPU) PatternTable(pal, table uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	base := uint16(table&0x1) * patternTableSize
	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			offset := base + uint16(tileY*256+tileX*16)
			for row := 0; row < 8; row++ {
				lo := p.read(offset + uint16(row))
				hi := p.read(offset + uint16(row) + 8)
				for col := 0; col < 8; col++ {
					pixel := (lo>>(7-col))&0x1 | ((hi>>(7-col))&0x1)<<1
					img.SetRGBA(tileX*8+col, tileY*8+row, p.PaletteColor(pal, pixel))
				}
			}
		}
	}
	return img
}
