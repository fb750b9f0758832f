package nes

const (
	regCtrl    = 0x0
	regMask    = 0x1
	regStatus  = 0x2
	regOAMAddr = 0x3
	regOAMData = 0x4
	regScroll  = 0x5
	regAddr    = 0x6
	regData    = 0x7
)

func (p *PPU) ReadRegister(reg uint16) uint8 {
	switch reg & ppuRegsMask {
	case regStatus:
		p.ioLatch = p.status&0xe0 | p.ioLatch&0x1f
		p.status &^= statusVBlank
		p.w = false
	case regOAMData:
		data := p.oam[p.oamAddr]
		// attribute bits 2-4 do not exist
		if p.oamAddr&0x3 == 0x2 {
			data &= 0xe3
		}
		p.ioLatch = data
	case regData:
		p.ioLatch = p.readData()
	}
	// write-only registers return whatever is left on the latch
	return p.ioLatch
}

func (p *PPU) WriteRegister(reg uint16, data uint8) {
	p.ioLatch = data
	switch reg & ppuRegsMask {
	case regCtrl:
		p.ctrl = data
		// t: ...GH.. ........ <- d: ......GH
		p.t = p.t&0xf3ff | uint16(data&ctrlNametable)<<10
	case regMask:
		p.mask = data
	case regOAMAddr:
		p.oamAddr = data
	case regOAMData:
		p.oam[p.oamAddr] = data
		p.oamAddr++
	case regScroll:
		p.writeScroll(data)
	case regAddr:
		p.writeAddr(data)
	case regData:
		p.write(p.v, data)
		p.incrementAddr()
	}
}

func (p *PPU) writeScroll(data uint8) {
	if !p.w {
		// t: ....... ...ABCDE <- d: ABCDE...
		// x:              FGH <- d: .....FGH
		p.t = p.t&0xffe0 | uint16(data)>>3
		p.x = data & 0x7
	} else {
		// t: FGH..AB CDE..... <- d: ABCDEFGH
		p.t = p.t&0x8c1f | uint16(data&0x7)<<12 | uint16(data&0xf8)<<2
	}
	p.w = !p.w
}

func (p *PPU) writeAddr(data uint8) {
	if !p.w {
		// t: .CDEFGH ........ <- d: ..CDEFGH, bit 14 cleared
		p.t = p.t&0x80ff | uint16(data&0x3f)<<8
	} else {
		// t: ....... ABCDEFGH <- d: ABCDEFGH, then v <- t
		p.t = p.t&0xff00 | uint16(data)
		p.v = p.t
	}
	p.w = !p.w
}

// readData returns the buffered byte and refills the buffer. Palette reads
// are immediate; the buffer gets the nametable byte underneath instead.
func (p *PPU) readData() uint8 {
	addr := p.v & ppuAddrMask
	var data uint8
	if addr >= paletteAddr {
		data = p.readPalette(addr)
		p.readBuffer = p.read(addr - 0x1000)
	} else {
		data = p.readBuffer
		p.readBuffer = p.read(addr)
	}
	p.incrementAddr()
	return data
}

func (p *PPU) incrementAddr() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.v += 32
	} else {
		p.v++
	}
	p.v &= 0x7fff
}
