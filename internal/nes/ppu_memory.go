package nes

// $0000-$0FFF: Pattern table 0
// $1000-$1FFF: Pattern table 1
// $2000-$23FF: Nametable 0
// $2400-$27FF: Nametable 1
// $2800-$2BFF: Nametable 2
// $2C00-$2FFF: Nametable 3
// $3000-$3EFF: Mirrors of $2000-$2EFF
// $3F00-$3F1F: Palette RAM indexes
// $3F20-$3FFF: Mirrors of $3F00-$3F1F
const (
	patternEndAddr   = 0x1fff
	nametableAddr    = 0x2000
	paletteAddr      = 0x3f00
	ppuAddrMask      = 0x3fff
	nametableSize    = 0x400
	attributeOffset  = 0x3c0
	patternTableSize = 0x1000
)

func (p *PPU) read(addr uint16) uint8 {
	addr &= ppuAddrMask
	switch {
	case addr <= patternEndAddr:
		if p.chr == nil {
			return 0
		}
		return p.chr.Read8(addr)
	case addr < paletteAddr:
		return p.vram.Read8(p.nametableIndex(addr))
	}
	return p.readPalette(addr)
}

func (p *PPU) write(addr uint16, data uint8) {
	addr &= ppuAddrMask
	switch {
	case addr <= patternEndAddr:
		if p.chr != nil {
			p.chr.Write8(addr, data)
		}
	case addr < paletteAddr:
		p.vram.Write8(p.nametableIndex(addr), data)
	default:
		p.palette.Write8(paletteIndex(addr), data)
	}
}

// nametableIndex folds the four logical nametables onto the 2 KB of VRAM
// as the cartridge wires them.
func (p *PPU) nametableIndex(addr uint16) uint16 {
	a := (addr - nametableAddr) & 0x0fff
	table := a / nametableSize
	offset := a % nametableSize
	var physical uint16
	if p.mirroring == MirrorVertical {
		physical = table & 0x1
	} else {
		physical = table >> 1
	}
	return physical*nametableSize + offset
}

// $3F10/$3F14/$3F18/$3F1C are the same cells as $3F00/$3F04/$3F08/$3F0C
func paletteIndex(addr uint16) uint16 {
	a := addr & 0x1f
	if a >= 0x10 && a&0x3 == 0 {
		a -= 0x10
	}
	return a
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.palette.Read8(paletteIndex(addr))
}
