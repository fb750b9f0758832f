package nes

// addPageCycle charges the extra cycle read instructions pay when an
// indexed address crosses a page.
func (c *CPU) addPageCycle() {
	if c.pageCrossed {
		c.instrCycles++
	}
}

func (c *CPU) addWithCarry(m uint8) {
	r16 := uint16(c.a) + uint16(m)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlag(flagV, (c.a^r8)&(m^r8)&0x80 != 0)
	c.setFlagsZN(r8)
	c.a = r8
}

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(flagC, reg >= m)
	c.setFlagsZN(reg - m)
}

func (c *CPU) adc() {
	c.addWithCarry(c.operand())
	c.addPageCycle()
}

// sbc is adc of the inverted operand; the carry acts as "no borrow".
func (c *CPU) sbc() {
	c.addWithCarry(^c.operand())
	c.addPageCycle()
}

func (c *CPU) and() {
	c.a &= c.operand()
	c.setFlagsZN(c.a)
	c.addPageCycle()
}

func (c *CPU) ora() {
	c.a |= c.operand()
	c.setFlagsZN(c.a)
	c.addPageCycle()
}

func (c *CPU) eor() {
	c.a ^= c.operand()
	c.setFlagsZN(c.a)
	c.addPageCycle()
}

func (c *CPU) shiftLeft(m uint8, carryIn bool) uint8 {
	r := m << 1
	if carryIn {
		r |= 0x1
	}
	c.setFlag(flagC, m&0x80 > 0)
	c.setFlagsZN(r)
	return r
}

func (c *CPU) shiftRight(m uint8, carryIn bool) uint8 {
	r := m >> 1
	if carryIn {
		r |= 0x80
	}
	c.setFlag(flagC, m&0x1 > 0)
	c.setFlagsZN(r)
	return r
}

func (c *CPU) asl() {
	c.store(c.shiftLeft(c.operand(), false))
}

func (c *CPU) lsr() {
	c.store(c.shiftRight(c.operand(), false))
}

func (c *CPU) rol() {
	c.store(c.shiftLeft(c.operand(), c.getFlag(flagC)))
}

func (c *CPU) ror() {
	c.store(c.shiftRight(c.operand(), c.getFlag(flagC)))
}

// branchIf takes the branch resolved by addrREL. A taken branch costs one
// cycle, one more if it lands on another page.
func (c *CPU) branchIf(condition bool) {
	if !condition {
		c.pc += 2
		return
	}
	c.instrCycles++
	if c.pageCrossed {
		c.instrCycles++
	}
	c.pc = c.operandAddr
}

func (c *CPU) bcc() { c.branchIf(!c.getFlag(flagC)) }
func (c *CPU) bcs() { c.branchIf(c.getFlag(flagC)) }
func (c *CPU) beq() { c.branchIf(c.getFlag(flagZ)) }
func (c *CPU) bmi() { c.branchIf(c.getFlag(flagN)) }
func (c *CPU) bne() { c.branchIf(!c.getFlag(flagZ)) }
func (c *CPU) bpl() { c.branchIf(!c.getFlag(flagN)) }
func (c *CPU) bvc() { c.branchIf(!c.getFlag(flagV)) }
func (c *CPU) bvs() { c.branchIf(c.getFlag(flagV)) }

func (c *CPU) bit() {
	m := c.operand()
	c.setFlag(flagZ, c.a&m == 0)
	c.setFlag(flagN, m&flagN > 0)
	c.setFlag(flagV, m&flagV > 0)
}

// brk skips the padding byte after the opcode.
func (c *CPU) brk() {
	c.stackPush16(c.pc + 2)
	c.stackPush8(c.p | flagB | flagU)
	c.setFlag(flagI, true)
	c.pc = c.read16(vectorIRQ)
}

func (c *CPU) clc() { c.setFlag(flagC, false) }
func (c *CPU) cld() { c.setFlag(flagD, false) }
func (c *CPU) cli() { c.setFlag(flagI, false) }
func (c *CPU) clv() { c.setFlag(flagV, false) }
func (c *CPU) sec() { c.setFlag(flagC, true) }
func (c *CPU) sed() { c.setFlag(flagD, true) }
func (c *CPU) sei() { c.setFlag(flagI, true) }

func (c *CPU) cmp() {
	c.compare(c.a, c.operand())
	c.addPageCycle()
}

func (c *CPU) cpx() {
	c.compare(c.x, c.operand())
}

func (c *CPU) cpy() {
	c.compare(c.y, c.operand())
}

func (c *CPU) dec() {
	r := c.operand() - 1
	c.setFlagsZN(r)
	c.store(r)
}

func (c *CPU) inc() {
	r := c.operand() + 1
	c.setFlagsZN(r)
	c.store(r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

// jsr pushes the address of its own last byte, rts adds the missing one.
func (c *CPU) jsr() {
	c.stackPush16(c.pc + 2)
	c.pc = c.operandAddr
}

func (c *CPU) rts() {
	c.pc = c.stackPop16() + 1
}

func (c *CPU) rti() {
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
}

func (c *CPU) lda() {
	c.a = c.operand()
	c.setFlagsZN(c.a)
	c.addPageCycle()
}

func (c *CPU) ldx() {
	c.x = c.operand()
	c.setFlagsZN(c.x)
	c.addPageCycle()
}

func (c *CPU) ldy() {
	c.y = c.operand()
	c.setFlagsZN(c.y)
	c.addPageCycle()
}

// nop covers the unofficial multi-byte NOPs too, which read their operand.
func (c *CPU) nop() {
	if c.addrMode != addrModeIMP {
		_ = c.operand()
	}
	c.addPageCycle()
}

func (c *CPU) pha() {
	c.stackPush8(c.a)
}

func (c *CPU) php() {
	c.stackPush8(c.p | flagB | flagU)
}

func (c *CPU) pla() {
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
}

func (c *CPU) plp() {
	c.p = (c.stackPop8() | flagU) & ^flagB
}

func (c *CPU) sta() { c.write8(c.operandAddr, c.a) }
func (c *CPU) stx() { c.write8(c.operandAddr, c.x) }
func (c *CPU) sty() { c.write8(c.operandAddr, c.y) }

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

// Unofficial opcodes exercised by the nestest ROM.

func (c *CPU) lax() {
	c.a = c.operand()
	c.x = c.a
	c.setFlagsZN(c.a)
	c.addPageCycle()
}

func (c *CPU) sax() {
	c.write8(c.operandAddr, c.a&c.x)
}

func (c *CPU) dcp() {
	r := c.operand() - 1
	c.store(r)
	c.compare(c.a, r)
}

func (c *CPU) isc() {
	r := c.operand() + 1
	c.store(r)
	c.addWithCarry(^r)
}

func (c *CPU) slo() {
	r := c.shiftLeft(c.operand(), false)
	c.store(r)
	c.a |= r
	c.setFlagsZN(c.a)
}

func (c *CPU) rla() {
	r := c.shiftLeft(c.operand(), c.getFlag(flagC))
	c.store(r)
	c.a &= r
	c.setFlagsZN(c.a)
}

func (c *CPU) sre() {
	r := c.shiftRight(c.operand(), false)
	c.store(r)
	c.a ^= r
	c.setFlagsZN(c.a)
}

func (c *CPU) rra() {
	r := c.shiftRight(c.operand(), c.getFlag(flagC))
	c.store(r)
	c.addWithCarry(r)
}

func (c *CPU) anc() {
	c.a &= c.operand()
	c.setFlagsZN(c.a)
	c.setFlag(flagC, c.a&0x80 > 0)
}

func (c *CPU) alr() {
	c.a &= c.operand()
	c.a = c.shiftRight(c.a, false)
}

func (c *CPU) las() {
	r := c.operand() & c.sp
	c.a = r
	c.x = r
	c.sp = r
	c.setFlagsZN(r)
	c.addPageCycle()
}
