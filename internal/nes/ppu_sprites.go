package nes

import "math/bits"

const (
	spriteAttrPalette  = 0x03
	spriteAttrBehind   = 0x20
	spriteAttrFlipH    = 0x40
	spriteAttrFlipV    = 0x80
	spriteEvalStartDot = 65
	spriteEvalEndDot   = 256
	spriteFetchStart   = 257
	spriteFetchEnd     = 320
)

// spriteUnit is one of the eight output units: two pattern shifters, the
// attribute latch and the X down-counter.
type spriteUnit struct {
	lo   uint8
	hi   uint8
	attr uint8
	x    uint8
}

// spriteEval is the state of the evaluation that fills secondary OAM
// during dots 65-256.
type spriteEval struct {
	n       uint8 // sprite 0-63
	m       uint8 // byte within the sprite 0-3
	found   int   // sprites copied to secondary OAM
	latch   uint8 // byte read on the odd dot
	copying bool  // copying bytes 1-3 of an in-range sprite
	done    bool
}

func (p *PPU) spriteHeight() int {
	if p.ctrl&ctrlSpriteSize != 0 {
		return 16
	}
	return 8
}

func (p *PPU) spriteInRange(y uint8) bool {
	row := p.scanline - int(y)
	return row >= 0 && row < p.spriteHeight()
}

// spriteDot runs the sprite side of a render line.
func (p *PPU) spriteDot() {
	dot := p.dot
	switch {
	case dot >= 1 && dot <= 64:
		if p.isVisibleLine() && dot%2 == 0 {
			p.secondaryOAM[dot/2-1] = 0xff
		}
	case dot >= spriteEvalStartDot && dot <= spriteEvalEndDot:
		if !p.isVisibleLine() {
			return
		}
		if dot == spriteEvalStartDot {
			p.eval = spriteEval{}
		}
		if dot%2 == 1 {
			p.eval.latch = p.oam[p.eval.n*4+p.eval.m]
		} else {
			p.evaluateSprite()
		}
	case dot >= spriteFetchStart && dot <= spriteFetchEnd:
		p.oamAddr = 0
		if dot == spriteFetchStart {
			p.spriteCount = 0
			if p.isVisibleLine() {
				p.spriteCount = p.eval.found
			}
			p.spriteZeroLine = p.spriteZeroNext
			p.spriteZeroNext = false
		}
		// the pattern bytes arrive on the last dot of each 8 dot slot
		if (dot-spriteFetchStart)%8 == 7 {
			p.loadSpriteUnit((dot - spriteFetchStart) / 8)
		}
	}
}

// evaluateSprite is the write half of an evaluation step. Once eight
// sprites are found the PPU keeps scanning for overflow but advances both
// the sprite index and the byte offset, so it compares tile, attribute or
// X bytes against the scanline instead of Y.
func (p *PPU) evaluateSprite() {
	e := &p.eval
	if e.done {
		return
	}

	if e.found < maxLineSprites {
		p.secondaryOAM[e.found*4+int(e.m)] = e.latch
		if e.copying {
			e.m++
			if e.m == 4 {
				e.m = 0
				e.copying = false
				e.found++
				p.nextEvalSprite()
			}
			return
		}
		if p.spriteInRange(e.latch) {
			if e.n == 0 {
				p.spriteZeroNext = true
			}
			e.copying = true
			e.m = 1
			return
		}
		p.nextEvalSprite()
		return
	}

	if p.spriteInRange(e.latch) {
		p.status |= statusOverflow
		e.done = true
		return
	}
	e.m = (e.m + 1) & 0x3
	p.nextEvalSprite()
}

func (p *PPU) nextEvalSprite() {
	p.eval.n++
	if p.eval.n == oamSizeBytes/4 {
		p.eval.n = 0
		p.eval.done = true
	}
}

func (p *PPU) loadSpriteUnit(i int) {
	u := &p.sprites[i]
	if i >= p.spriteCount {
		*u = spriteUnit{}
		return
	}

	y := p.secondaryOAM[i*4]
	tile := p.secondaryOAM[i*4+1]
	attr := p.secondaryOAM[i*4+2]
	height := p.spriteHeight()

	row := p.scanline - int(y)
	if attr&spriteAttrFlipV != 0 {
		row = height - 1 - row
	}

	var addr uint16
	if height == 16 {
		table := uint16(tile&0x1) * patternTableSize
		tile &^= 0x1
		if row >= 8 {
			tile++
			row -= 8
		}
		addr = table + uint16(tile)*16 + uint16(row)
	} else {
		var table uint16
		if p.ctrl&ctrlSpriteTable != 0 {
			table = patternTableSize
		}
		addr = table + uint16(tile)*16 + uint16(row)
	}

	lo := p.read(addr)
	hi := p.read(addr + 8)
	if attr&spriteAttrFlipH != 0 {
		lo = bits.Reverse8(lo)
		hi = bits.Reverse8(hi)
	}
	*u = spriteUnit{lo: lo, hi: hi, attr: attr, x: p.secondaryOAM[i*4+3]}
}

// spritePixel returns the first opaque pixel among the active units. zero
// is set when it comes from sprite 0.
func (p *PPU) spritePixel(x int) (pixel, palette uint8, behind, zero bool) {
	if p.mask&maskSprites == 0 || (x < 8 && p.mask&maskSpriteLeft == 0) {
		return 0, 0, false, false
	}
	for i := 0; i < p.spriteCount; i++ {
		u := &p.sprites[i]
		if u.x != 0 {
			continue
		}
		pixel = (u.hi>>7)<<1 | u.lo>>7
		if pixel == 0 {
			continue
		}
		return pixel, u.attr & spriteAttrPalette, u.attr&spriteAttrBehind != 0, i == 0 && p.spriteZeroLine
	}
	return 0, 0, false, false
}

// shiftSprites counts inactive units down and shifts active ones.
func (p *PPU) shiftSprites() {
	for i := 0; i < p.spriteCount; i++ {
		u := &p.sprites[i]
		if u.x > 0 {
			u.x--
			continue
		}
		u.lo <<= 1
		u.hi <<= 1
	}
}
