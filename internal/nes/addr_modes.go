package nes

// resolve computes the effective address for mode from the operand bytes
// following the opcode at pc. It never moves pc. Accumulator and implied
// modes have no address and resolve to 0; operand() and store() handle the
// accumulator case. pageCrossed is only meaningful for ABSX, ABSY and INDY.
func (c *CPU) resolve(mode addrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case addrModeIMM:
		return c.pc + 1, false
	case addrModeZP:
		return c.addrZP(), false
	case addrModeZPX:
		return c.addrZPIndexed(c.x), false
	case addrModeZPY:
		return c.addrZPIndexed(c.y), false
	case addrModeABS:
		return c.read16(c.pc + 1), false
	case addrModeABSX:
		return c.addrABSIndexed(c.x)
	case addrModeABSY:
		return c.addrABSIndexed(c.y)
	case addrModeIND:
		return c.addrIND(), false
	case addrModeINDX:
		return c.addrINDX(), false
	case addrModeINDY:
		return c.addrINDY()
	case addrModeREL:
		return c.addrREL()
	}
	return 0, false
}

func (c *CPU) addrZP() uint16 {
	return uint16(c.read8(c.pc + 1))
}

// the sum wraps inside the zero page
func (c *CPU) addrZPIndexed(index uint8) uint16 {
	return uint16(c.read8(c.pc+1) + index)
}

func (c *CPU) addrABSIndexed(index uint8) (uint16, bool) {
	base := c.read16(c.pc + 1)
	addr := base + uint16(index)
	return addr, isDiffPage(base, addr)
}

// addrIND reproduces the 6502 bug: a pointer at $xxFF takes its high byte
// from $xx00 instead of the next page.
func (c *CPU) addrIND() uint16 {
	ptr := c.read16(c.pc + 1)
	hi := (ptr & 0xff00) | uint16(uint8(ptr)+1)
	return uint16(c.read8(ptr)) | uint16(c.read8(hi))<<8
}

func (c *CPU) zpPointer(ptr uint8) uint16 {
	lo := uint16(c.read8(uint16(ptr)))
	hi := uint16(c.read8(uint16(ptr + 1)))
	return lo | hi<<8
}

func (c *CPU) addrINDX() uint16 {
	return c.zpPointer(c.read8(c.pc+1) + c.x)
}

func (c *CPU) addrINDY() (uint16, bool) {
	base := c.zpPointer(c.read8(c.pc + 1))
	addr := base + uint16(c.y)
	return addr, isDiffPage(base, addr)
}

// addrREL returns the branch target. The offset is relative to the
// instruction after the branch; pageCrossed compares against that address.
func (c *CPU) addrREL() (uint16, bool) {
	offset := uint16(c.read8(c.pc + 1))
	if offset&0x80 > 0 {
		offset |= 0xff00 // add leading 1 s to save the sign
	}
	next := c.pc + 2
	addr := next + offset
	return addr, isDiffPage(next, addr)
}
