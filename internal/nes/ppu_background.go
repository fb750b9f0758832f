package nes

// bgPipeline holds the tile fetched during the current 8 dot group and the
// shift registers feeding the pixel output. The high byte of each shifter
// is the tile being drawn, the low byte the next one.
type bgPipeline struct {
	ntByte uint8
	atBits uint8 // 2 palette bits for the fetched tile
	ptLow  uint8
	ptHigh uint8

	shiftPtLow  uint16
	shiftPtHigh uint16
	shiftAtLow  uint16
	shiftAtHigh uint16
}

func (bg *bgPipeline) shift() {
	bg.shiftPtLow <<= 1
	bg.shiftPtHigh <<= 1
	bg.shiftAtLow <<= 1
	bg.shiftAtHigh <<= 1
}

func (bg *bgPipeline) reload() {
	bg.shiftPtLow = bg.shiftPtLow&0xff00 | uint16(bg.ptLow)
	bg.shiftPtHigh = bg.shiftPtHigh&0xff00 | uint16(bg.ptHigh)
	bg.shiftAtLow &= 0xff00
	bg.shiftAtHigh &= 0xff00
	if bg.atBits&0x1 != 0 {
		bg.shiftAtLow |= 0xff
	}
	if bg.atBits&0x2 != 0 {
		bg.shiftAtHigh |= 0xff
	}
}

// backgroundDot runs the fetch cadence of one dot on a render line:
//
//	dot%8 == 1  nametable byte (and shifter reload)
//	dot%8 == 3  attribute byte
//	dot%8 == 5  pattern low
//	dot%8 == 7  pattern high
//	dot%8 == 0  coarse X increment
//
// over dots 1-256 for the current line and 321-336 for the first two
// tiles of the next.
func (p *PPU) backgroundDot() {
	dot := p.dot
	fetching := (dot >= 2 && dot <= 257) || (dot >= 321 && dot <= 337)
	if fetching {
		p.bg.shift()
		switch (dot - 1) % 8 {
		case 0:
			p.bg.reload()
			p.fetchNametable()
		case 2:
			p.fetchAttribute()
		case 4:
			p.bg.ptLow = p.read(p.bgPatternAddr())
		case 6:
			p.bg.ptHigh = p.read(p.bgPatternAddr() + 8)
		case 7:
			p.incrementX()
		}
	}

	switch {
	case dot == 256:
		p.incrementY()
	case dot == 257:
		p.bg.reload()
		p.copyX()
	case dot == 338 || dot == 340:
		// unused nametable fetches some mappers count on
		p.fetchNametable()
	}

	if p.isPreRenderLine() && dot >= 280 && dot <= 304 {
		p.copyY()
	}
}

func (p *PPU) fetchNametable() {
	p.bg.ntByte = p.read(nametableAddr | p.v&0x0fff)
}

func (p *PPU) fetchAttribute() {
	v := p.v
	addr := nametableAddr + attributeOffset | v&0x0c00 | (v>>4)&0x38 | (v>>2)&0x07
	shift := (v>>4)&0x4 | v&0x2
	p.bg.atBits = (p.read(addr) >> shift) & 0x3
}

func (p *PPU) bgPatternAddr() uint16 {
	var table uint16
	if p.ctrl&ctrlBgTable != 0 {
		table = patternTableSize
	}
	fineY := (p.v >> 12) & 0x7
	return table + uint16(p.bg.ntByte)*16 + fineY
}

// backgroundPixel returns the 2 bit pattern value and the palette of the
// background at screen column x.
func (p *PPU) backgroundPixel(x int) (pixel, palette uint8) {
	if p.mask&maskBg == 0 || (x < 8 && p.mask&maskBgLeft == 0) {
		return 0, 0
	}
	bit := uint16(0x8000) >> p.x
	if p.bg.shiftPtLow&bit != 0 {
		pixel |= 0x1
	}
	if p.bg.shiftPtHigh&bit != 0 {
		pixel |= 0x2
	}
	if p.bg.shiftAtLow&bit != 0 {
		palette |= 0x1
	}
	if p.bg.shiftAtHigh&bit != 0 {
		palette |= 0x2
	}
	return pixel, palette
}

func (p *PPU) incrementX() {
	if p.v&0x001f == 31 {
		// coarse X = 0, switch horizontal nametable
		p.v &^= 0x001f
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03e0) >> 5
	switch y {
	case 29:
		y = 0
		// switch vertical nametable
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = p.v&^0x03e0 | y<<5
}

// v: ....A.. ...BCDEF <- t: ....A.. ...BCDEF
func (p *PPU) copyX() {
	p.v = p.v&0xfbe0 | p.t&0x041f
}

// v: GHIA.BC DEF..... <- t: GHIA.BC DEF.....
func (p *PPU) copyY() {
	p.v = p.v&0x841f | p.t&0x7be0
}
