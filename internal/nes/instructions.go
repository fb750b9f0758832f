package nes

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

type instr struct {
	name   string
	fn     func(c *CPU)
	mode   addrMode
	size   uint8 // bytes including the opcode
	cycles uint8 // base cycles, before page-cross and branch penalties
	setsPC bool  // fn leaves pc pointing at the next instruction itself
}

// instructions is indexed by the raw opcode byte. Entries with a nil fn are
// illegal: the KIL/JAM opcodes and the unstable unofficial ones.
var instructions = [0x100]instr{
	0x00: {name: "BRK", fn: (*CPU).brk, mode: addrModeIMP, size: 1, cycles: 7, setsPC: true},
	0x01: {name: "ORA", fn: (*CPU).ora, mode: addrModeINDX, size: 2, cycles: 6},
	0x03: {name: "SLO", fn: (*CPU).slo, mode: addrModeINDX, size: 2, cycles: 8},
	0x04: {name: "NOP", fn: (*CPU).nop, mode: addrModeZP, size: 2, cycles: 3},
	0x05: {name: "ORA", fn: (*CPU).ora, mode: addrModeZP, size: 2, cycles: 3},
	0x06: {name: "ASL", fn: (*CPU).asl, mode: addrModeZP, size: 2, cycles: 5},
	0x07: {name: "SLO", fn: (*CPU).slo, mode: addrModeZP, size: 2, cycles: 5},
	0x08: {name: "PHP", fn: (*CPU).php, mode: addrModeIMP, size: 1, cycles: 3},
	0x09: {name: "ORA", fn: (*CPU).ora, mode: addrModeIMM, size: 2, cycles: 2},
	0x0a: {name: "ASL", fn: (*CPU).asl, mode: addrModeACC, size: 1, cycles: 2},
	0x0b: {name: "ANC", fn: (*CPU).anc, mode: addrModeIMM, size: 2, cycles: 2},
	0x0c: {name: "NOP", fn: (*CPU).nop, mode: addrModeABS, size: 3, cycles: 4},
	0x0d: {name: "ORA", fn: (*CPU).ora, mode: addrModeABS, size: 3, cycles: 4},
	0x0e: {name: "ASL", fn: (*CPU).asl, mode: addrModeABS, size: 3, cycles: 6},
	0x0f: {name: "SLO", fn: (*CPU).slo, mode: addrModeABS, size: 3, cycles: 6},
	0x10: {name: "BPL", fn: (*CPU).bpl, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0x11: {name: "ORA", fn: (*CPU).ora, mode: addrModeINDY, size: 2, cycles: 5},
	0x13: {name: "SLO", fn: (*CPU).slo, mode: addrModeINDY, size: 2, cycles: 8},
	0x14: {name: "NOP", fn: (*CPU).nop, mode: addrModeZPX, size: 2, cycles: 4},
	0x15: {name: "ORA", fn: (*CPU).ora, mode: addrModeZPX, size: 2, cycles: 4},
	0x16: {name: "ASL", fn: (*CPU).asl, mode: addrModeZPX, size: 2, cycles: 6},
	0x17: {name: "SLO", fn: (*CPU).slo, mode: addrModeZPX, size: 2, cycles: 6},
	0x18: {name: "CLC", fn: (*CPU).clc, mode: addrModeIMP, size: 1, cycles: 2},
	0x19: {name: "ORA", fn: (*CPU).ora, mode: addrModeABSY, size: 3, cycles: 4},
	0x1a: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0x1b: {name: "SLO", fn: (*CPU).slo, mode: addrModeABSY, size: 3, cycles: 7},
	0x1c: {name: "NOP", fn: (*CPU).nop, mode: addrModeABSX, size: 3, cycles: 4},
	0x1d: {name: "ORA", fn: (*CPU).ora, mode: addrModeABSX, size: 3, cycles: 4},
	0x1e: {name: "ASL", fn: (*CPU).asl, mode: addrModeABSX, size: 3, cycles: 7},
	0x1f: {name: "SLO", fn: (*CPU).slo, mode: addrModeABSX, size: 3, cycles: 7},
	0x20: {name: "JSR", fn: (*CPU).jsr, mode: addrModeABS, size: 3, cycles: 6, setsPC: true},
	0x21: {name: "AND", fn: (*CPU).and, mode: addrModeINDX, size: 2, cycles: 6},
	0x23: {name: "RLA", fn: (*CPU).rla, mode: addrModeINDX, size: 2, cycles: 8},
	0x24: {name: "BIT", fn: (*CPU).bit, mode: addrModeZP, size: 2, cycles: 3},
	0x25: {name: "AND", fn: (*CPU).and, mode: addrModeZP, size: 2, cycles: 3},
	0x26: {name: "ROL", fn: (*CPU).rol, mode: addrModeZP, size: 2, cycles: 5},
	0x27: {name: "RLA", fn: (*CPU).rla, mode: addrModeZP, size: 2, cycles: 5},
	0x28: {name: "PLP", fn: (*CPU).plp, mode: addrModeIMP, size: 1, cycles: 4},
	0x29: {name: "AND", fn: (*CPU).and, mode: addrModeIMM, size: 2, cycles: 2},
	0x2a: {name: "ROL", fn: (*CPU).rol, mode: addrModeACC, size: 1, cycles: 2},
	0x2b: {name: "ANC", fn: (*CPU).anc, mode: addrModeIMM, size: 2, cycles: 2},
	0x2c: {name: "BIT", fn: (*CPU).bit, mode: addrModeABS, size: 3, cycles: 4},
	0x2d: {name: "AND", fn: (*CPU).and, mode: addrModeABS, size: 3, cycles: 4},
	0x2e: {name: "ROL", fn: (*CPU).rol, mode: addrModeABS, size: 3, cycles: 6},
	0x2f: {name: "RLA", fn: (*CPU).rla, mode: addrModeABS, size: 3, cycles: 6},
	0x30: {name: "BMI", fn: (*CPU).bmi, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0x31: {name: "AND", fn: (*CPU).and, mode: addrModeINDY, size: 2, cycles: 5},
	0x33: {name: "RLA", fn: (*CPU).rla, mode: addrModeINDY, size: 2, cycles: 8},
	0x34: {name: "NOP", fn: (*CPU).nop, mode: addrModeZPX, size: 2, cycles: 4},
	0x35: {name: "AND", fn: (*CPU).and, mode: addrModeZPX, size: 2, cycles: 4},
	0x36: {name: "ROL", fn: (*CPU).rol, mode: addrModeZPX, size: 2, cycles: 6},
	0x37: {name: "RLA", fn: (*CPU).rla, mode: addrModeZPX, size: 2, cycles: 6},
	0x38: {name: "SEC", fn: (*CPU).sec, mode: addrModeIMP, size: 1, cycles: 2},
	0x39: {name: "AND", fn: (*CPU).and, mode: addrModeABSY, size: 3, cycles: 4},
	0x3a: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0x3b: {name: "RLA", fn: (*CPU).rla, mode: addrModeABSY, size: 3, cycles: 7},
	0x3c: {name: "NOP", fn: (*CPU).nop, mode: addrModeABSX, size: 3, cycles: 4},
	0x3d: {name: "AND", fn: (*CPU).and, mode: addrModeABSX, size: 3, cycles: 4},
	0x3e: {name: "ROL", fn: (*CPU).rol, mode: addrModeABSX, size: 3, cycles: 7},
	0x3f: {name: "RLA", fn: (*CPU).rla, mode: addrModeABSX, size: 3, cycles: 7},
	0x40: {name: "RTI", fn: (*CPU).rti, mode: addrModeIMP, size: 1, cycles: 6, setsPC: true},
	0x41: {name: "EOR", fn: (*CPU).eor, mode: addrModeINDX, size: 2, cycles: 6},
	0x43: {name: "SRE", fn: (*CPU).sre, mode: addrModeINDX, size: 2, cycles: 8},
	0x44: {name: "NOP", fn: (*CPU).nop, mode: addrModeZP, size: 2, cycles: 3},
	0x45: {name: "EOR", fn: (*CPU).eor, mode: addrModeZP, size: 2, cycles: 3},
	0x46: {name: "LSR", fn: (*CPU).lsr, mode: addrModeZP, size: 2, cycles: 5},
	0x47: {name: "SRE", fn: (*CPU).sre, mode: addrModeZP, size: 2, cycles: 5},
	0x48: {name: "PHA", fn: (*CPU).pha, mode: addrModeIMP, size: 1, cycles: 3},
	0x49: {name: "EOR", fn: (*CPU).eor, mode: addrModeIMM, size: 2, cycles: 2},
	0x4a: {name: "LSR", fn: (*CPU).lsr, mode: addrModeACC, size: 1, cycles: 2},
	0x4b: {name: "ALR", fn: (*CPU).alr, mode: addrModeIMM, size: 2, cycles: 2},
	0x4c: {name: "JMP", fn: (*CPU).jmp, mode: addrModeABS, size: 3, cycles: 3, setsPC: true},
	0x4d: {name: "EOR", fn: (*CPU).eor, mode: addrModeABS, size: 3, cycles: 4},
	0x4e: {name: "LSR", fn: (*CPU).lsr, mode: addrModeABS, size: 3, cycles: 6},
	0x4f: {name: "SRE", fn: (*CPU).sre, mode: addrModeABS, size: 3, cycles: 6},
	0x50: {name: "BVC", fn: (*CPU).bvc, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0x51: {name: "EOR", fn: (*CPU).eor, mode: addrModeINDY, size: 2, cycles: 5},
	0x53: {name: "SRE", fn: (*CPU).sre, mode: addrModeINDY, size: 2, cycles: 8},
	0x54: {name: "NOP", fn: (*CPU).nop, mode: addrModeZPX, size: 2, cycles: 4},
	0x55: {name: "EOR", fn: (*CPU).eor, mode: addrModeZPX, size: 2, cycles: 4},
	0x56: {name: "LSR", fn: (*CPU).lsr, mode: addrModeZPX, size: 2, cycles: 6},
	0x57: {name: "SRE", fn: (*CPU).sre, mode: addrModeZPX, size: 2, cycles: 6},
	0x58: {name: "CLI", fn: (*CPU).cli, mode: addrModeIMP, size: 1, cycles: 2},
	0x59: {name: "EOR", fn: (*CPU).eor, mode: addrModeABSY, size: 3, cycles: 4},
	0x5a: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0x5b: {name: "SRE", fn: (*CPU).sre, mode: addrModeABSY, size: 3, cycles: 7},
	0x5c: {name: "NOP", fn: (*CPU).nop, mode: addrModeABSX, size: 3, cycles: 4},
	0x5d: {name: "EOR", fn: (*CPU).eor, mode: addrModeABSX, size: 3, cycles: 4},
	0x5e: {name: "LSR", fn: (*CPU).lsr, mode: addrModeABSX, size: 3, cycles: 7},
	0x5f: {name: "SRE", fn: (*CPU).sre, mode: addrModeABSX, size: 3, cycles: 7},
	0x60: {name: "RTS", fn: (*CPU).rts, mode: addrModeIMP, size: 1, cycles: 6, setsPC: true},
	0x61: {name: "ADC", fn: (*CPU).adc, mode: addrModeINDX, size: 2, cycles: 6},
	0x63: {name: "RRA", fn: (*CPU).rra, mode: addrModeINDX, size: 2, cycles: 8},
	0x64: {name: "NOP", fn: (*CPU).nop, mode: addrModeZP, size: 2, cycles: 3},
	0x65: {name: "ADC", fn: (*CPU).adc, mode: addrModeZP, size: 2, cycles: 3},
	0x66: {name: "ROR", fn: (*CPU).ror, mode: addrModeZP, size: 2, cycles: 5},
	0x67: {name: "RRA", fn: (*CPU).rra, mode: addrModeZP, size: 2, cycles: 5},
	0x68: {name: "PLA", fn: (*CPU).pla, mode: addrModeIMP, size: 1, cycles: 4},
	0x69: {name: "ADC", fn: (*CPU).adc, mode: addrModeIMM, size: 2, cycles: 2},
	0x6a: {name: "ROR", fn: (*CPU).ror, mode: addrModeACC, size: 1, cycles: 2},
	0x6c: {name: "JMP", fn: (*CPU).jmp, mode: addrModeIND, size: 3, cycles: 5, setsPC: true},
	0x6d: {name: "ADC", fn: (*CPU).adc, mode: addrModeABS, size: 3, cycles: 4},
	0x6e: {name: "ROR", fn: (*CPU).ror, mode: addrModeABS, size: 3, cycles: 6},
	0x6f: {name: "RRA", fn: (*CPU).rra, mode: addrModeABS, size: 3, cycles: 6},
	0x70: {name: "BVS", fn: (*CPU).bvs, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0x71: {name: "ADC", fn: (*CPU).adc, mode: addrModeINDY, size: 2, cycles: 5},
	0x73: {name: "RRA", fn: (*CPU).rra, mode: addrModeINDY, size: 2, cycles: 8},
	0x74: {name: "NOP", fn: (*CPU).nop, mode: addrModeZPX, size: 2, cycles: 4},
	0x75: {name: "ADC", fn: (*CPU).adc, mode: addrModeZPX, size: 2, cycles: 4},
	0x76: {name: "ROR", fn: (*CPU).ror, mode: addrModeZPX, size: 2, cycles: 6},
	0x77: {name: "RRA", fn: (*CPU).rra, mode: addrModeZPX, size: 2, cycles: 6},
	0x78: {name: "SEI", fn: (*CPU).sei, mode: addrModeIMP, size: 1, cycles: 2},
	0x79: {name: "ADC", fn: (*CPU).adc, mode: addrModeABSY, size: 3, cycles: 4},
	0x7a: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0x7b: {name: "RRA", fn: (*CPU).rra, mode: addrModeABSY, size: 3, cycles: 7},
	0x7c: {name: "NOP", fn: (*CPU).nop, mode: addrModeABSX, size: 3, cycles: 4},
	0x7d: {name: "ADC", fn: (*CPU).adc, mode: addrModeABSX, size: 3, cycles: 4},
	0x7e: {name: "ROR", fn: (*CPU).ror, mode: addrModeABSX, size: 3, cycles: 7},
	0x7f: {name: "RRA", fn: (*CPU).rra, mode: addrModeABSX, size: 3, cycles: 7},
	0x80: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMM, size: 2, cycles: 2},
	0x81: {name: "STA", fn: (*CPU).sta, mode: addrModeINDX, size: 2, cycles: 6},
	0x82: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMM, size: 2, cycles: 2},
	0x83: {name: "SAX", fn: (*CPU).sax, mode: addrModeINDX, size: 2, cycles: 6},
	0x84: {name: "STY", fn: (*CPU).sty, mode: addrModeZP, size: 2, cycles: 3},
	0x85: {name: "STA", fn: (*CPU).sta, mode: addrModeZP, size: 2, cycles: 3},
	0x86: {name: "STX", fn: (*CPU).stx, mode: addrModeZP, size: 2, cycles: 3},
	0x87: {name: "SAX", fn: (*CPU).sax, mode: addrModeZP, size: 2, cycles: 3},
	0x88: {name: "DEY", fn: (*CPU).dey, mode: addrModeIMP, size: 1, cycles: 2},
	0x89: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMM, size: 2, cycles: 2},
	0x8a: {name: "TXA", fn: (*CPU).txa, mode: addrModeIMP, size: 1, cycles: 2},
	0x8c: {name: "STY", fn: (*CPU).sty, mode: addrModeABS, size: 3, cycles: 4},
	0x8d: {name: "STA", fn: (*CPU).sta, mode: addrModeABS, size: 3, cycles: 4},
	0x8e: {name: "STX", fn: (*CPU).stx, mode: addrModeABS, size: 3, cycles: 4},
	0x8f: {name: "SAX", fn: (*CPU).sax, mode: addrModeABS, size: 3, cycles: 4},
	0x90: {name: "BCC", fn: (*CPU).bcc, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0x91: {name: "STA", fn: (*CPU).sta, mode: addrModeINDY, size: 2, cycles: 6},
	0x94: {name: "STY", fn: (*CPU).sty, mode: addrModeZPX, size: 2, cycles: 4},
	0x95: {name: "STA", fn: (*CPU).sta, mode: addrModeZPX, size: 2, cycles: 4},
	0x96: {name: "STX", fn: (*CPU).stx, mode: addrModeZPY, size: 2, cycles: 4},
	0x97: {name: "SAX", fn: (*CPU).sax, mode: addrModeZPY, size: 2, cycles: 4},
	0x98: {name: "TYA", fn: (*CPU).tya, mode: addrModeIMP, size: 1, cycles: 2},
	0x99: {name: "STA", fn: (*CPU).sta, mode: addrModeABSY, size: 3, cycles: 5},
	0x9a: {name: "TXS", fn: (*CPU).txs, mode: addrModeIMP, size: 1, cycles: 2},
	0x9d: {name: "STA", fn: (*CPU).sta, mode: addrModeABSX, size: 3, cycles: 5},
	0xa0: {name: "LDY", fn: (*CPU).ldy, mode: addrModeIMM, size: 2, cycles: 2},
	0xa1: {name: "LDA", fn: (*CPU).lda, mode: addrModeINDX, size: 2, cycles: 6},
	0xa2: {name: "LDX", fn: (*CPU).ldx, mode: addrModeIMM, size: 2, cycles: 2},
	0xa3: {name: "LAX", fn: (*CPU).lax, mode: addrModeINDX, size: 2, cycles: 6},
	0xa4: {name: "LDY", fn: (*CPU).ldy, mode: addrModeZP, size: 2, cycles: 3},
	0xa5: {name: "LDA", fn: (*CPU).lda, mode: addrModeZP, size: 2, cycles: 3},
	0xa6: {name: "LDX", fn: (*CPU).ldx, mode: addrModeZP, size: 2, cycles: 3},
	0xa7: {name: "LAX", fn: (*CPU).lax, mode: addrModeZP, size: 2, cycles: 3},
	0xa8: {name: "TAY", fn: (*CPU).tay, mode: addrModeIMP, size: 1, cycles: 2},
	0xa9: {name: "LDA", fn: (*CPU).lda, mode: addrModeIMM, size: 2, cycles: 2},
	0xaa: {name: "TAX", fn: (*CPU).tax, mode: addrModeIMP, size: 1, cycles: 2},
	0xac: {name: "LDY", fn: (*CPU).ldy, mode: addrModeABS, size: 3, cycles: 4},
	0xad: {name: "LDA", fn: (*CPU).lda, mode: addrModeABS, size: 3, cycles: 4},
	0xae: {name: "LDX", fn: (*CPU).ldx, mode: addrModeABS, size: 3, cycles: 4},
	0xaf: {name: "LAX", fn: (*CPU).lax, mode: addrModeABS, size: 3, cycles: 4},
	0xb0: {name: "BCS", fn: (*CPU).bcs, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0xb1: {name: "LDA", fn: (*CPU).lda, mode: addrModeINDY, size: 2, cycles: 5},
	0xb3: {name: "LAX", fn: (*CPU).lax, mode: addrModeINDY, size: 2, cycles: 5},
	0xb4: {name: "LDY", fn: (*CPU).ldy, mode: addrModeZPX, size: 2, cycles: 4},
	0xb5: {name: "LDA", fn: (*CPU).lda, mode: addrModeZPX, size: 2, cycles: 4},
	0xb6: {name: "LDX", fn: (*CPU).ldx, mode: addrModeZPY, size: 2, cycles: 4},
	0xb7: {name: "LAX", fn: (*CPU).lax, mode: addrModeZPY, size: 2, cycles: 4},
	0xb8: {name: "CLV", fn: (*CPU).clv, mode: addrModeIMP, size: 1, cycles: 2},
	0xb9: {name: "LDA", fn: (*CPU).lda, mode: addrModeABSY, size: 3, cycles: 4},
	0xba: {name: "TSX", fn: (*CPU).tsx, mode: addrModeIMP, size: 1, cycles: 2},
	0xbb: {name: "LAS", fn: (*CPU).las, mode: addrModeABSY, size: 3, cycles: 4},
	0xbc: {name: "LDY", fn: (*CPU).ldy, mode: addrModeABSX, size: 3, cycles: 4},
	0xbd: {name: "LDA", fn: (*CPU).lda, mode: addrModeABSX, size: 3, cycles: 4},
	0xbe: {name: "LDX", fn: (*CPU).ldx, mode: addrModeABSY, size: 3, cycles: 4},
	0xbf: {name: "LAX", fn: (*CPU).lax, mode: addrModeABSY, size: 3, cycles: 4},
	0xc0: {name: "CPY", fn: (*CPU).cpy, mode: addrModeIMM, size: 2, cycles: 2},
	0xc1: {name: "CMP", fn: (*CPU).cmp, mode: addrModeINDX, size: 2, cycles: 6},
	0xc2: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMM, size: 2, cycles: 2},
	0xc3: {name: "DCP", fn: (*CPU).dcp, mode: addrModeINDX, size: 2, cycles: 8},
	0xc4: {name: "CPY", fn: (*CPU).cpy, mode: addrModeZP, size: 2, cycles: 3},
	0xc5: {name: "CMP", fn: (*CPU).cmp, mode: addrModeZP, size: 2, cycles: 3},
	0xc6: {name: "DEC", fn: (*CPU).dec, mode: addrModeZP, size: 2, cycles: 5},
	0xc7: {name: "DCP", fn: (*CPU).dcp, mode: addrModeZP, size: 2, cycles: 5},
	0xc8: {name: "INY", fn: (*CPU).iny, mode: addrModeIMP, size: 1, cycles: 2},
	0xc9: {name: "CMP", fn: (*CPU).cmp, mode: addrModeIMM, size: 2, cycles: 2},
	0xca: {name: "DEX", fn: (*CPU).dex, mode: addrModeIMP, size: 1, cycles: 2},
	0xcc: {name: "CPY", fn: (*CPU).cpy, mode: addrModeABS, size: 3, cycles: 4},
	0xcd: {name: "CMP", fn: (*CPU).cmp, mode: addrModeABS, size: 3, cycles: 4},
	0xce: {name: "DEC", fn: (*CPU).dec, mode: addrModeABS, size: 3, cycles: 6},
	0xcf: {name: "DCP", fn: (*CPU).dcp, mode: addrModeABS, size: 3, cycles: 6},
	0xd0: {name: "BNE", fn: (*CPU).bne, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0xd1: {name: "CMP", fn: (*CPU).cmp, mode: addrModeINDY, size: 2, cycles: 5},
	0xd3: {name: "DCP", fn: (*CPU).dcp, mode: addrModeINDY, size: 2, cycles: 8},
	0xd4: {name: "NOP", fn: (*CPU).nop, mode: addrModeZPX, size: 2, cycles: 4},
	0xd5: {name: "CMP", fn: (*CPU).cmp, mode: addrModeZPX, size: 2, cycles: 4},
	0xd6: {name: "DEC", fn: (*CPU).dec, mode: addrModeZPX, size: 2, cycles: 6},
	0xd7: {name: "DCP", fn: (*CPU).dcp, mode: addrModeZPX, size: 2, cycles: 6},
	0xd8: {name: "CLD", fn: (*CPU).cld, mode: addrModeIMP, size: 1, cycles: 2},
	0xd9: {name: "CMP", fn: (*CPU).cmp, mode: addrModeABSY, size: 3, cycles: 4},
	0xda: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0xdb: {name: "DCP", fn: (*CPU).dcp, mode: addrModeABSY, size: 3, cycles: 7},
	0xdc: {name: "NOP", fn: (*CPU).nop, mode: addrModeABSX, size: 3, cycles: 4},
	0xdd: {name: "CMP", fn: (*CPU).cmp, mode: addrModeABSX, size: 3, cycles: 4},
	0xde: {name: "DEC", fn: (*CPU).dec, mode: addrModeABSX, size: 3, cycles: 7},
	0xdf: {name: "DCP", fn: (*CPU).dcp, mode: addrModeABSX, size: 3, cycles: 7},
	0xe0: {name: "CPX", fn: (*CPU).cpx, mode: addrModeIMM, size: 2, cycles: 2},
	0xe1: {name: "SBC", fn: (*CPU).sbc, mode: addrModeINDX, size: 2, cycles: 6},
	0xe2: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMM, size: 2, cycles: 2},
	0xe3: {name: "ISC", fn: (*CPU).isc, mode: addrModeINDX, size: 2, cycles: 8},
	0xe4: {name: "CPX", fn: (*CPU).cpx, mode: addrModeZP, size: 2, cycles: 3},
	0xe5: {name: "SBC", fn: (*CPU).sbc, mode: addrModeZP, size: 2, cycles: 3},
	0xe6: {name: "INC", fn: (*CPU).inc, mode: addrModeZP, size: 2, cycles: 5},
	0xe7: {name: "ISC", fn: (*CPU).isc, mode: addrModeZP, size: 2, cycles: 5},
	0xe8: {name: "INX", fn: (*CPU).inx, mode: addrModeIMP, size: 1, cycles: 2},
	0xe9: {name: "SBC", fn: (*CPU).sbc, mode: addrModeIMM, size: 2, cycles: 2},
	0xea: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0xeb: {name: "SBC", fn: (*CPU).sbc, mode: addrModeIMM, size: 2, cycles: 2},
	0xec: {name: "CPX", fn: (*CPU).cpx, mode: addrModeABS, size: 3, cycles: 4},
	0xed: {name: "SBC", fn: (*CPU).sbc, mode: addrModeABS, size: 3, cycles: 4},
	0xee: {name: "INC", fn: (*CPU).inc, mode: addrModeABS, size: 3, cycles: 6},
	0xef: {name: "ISC", fn: (*CPU).isc, mode: addrModeABS, size: 3, cycles: 6},
	0xf0: {name: "BEQ", fn: (*CPU).beq, mode: addrModeREL, size: 2, cycles: 2, setsPC: true},
	0xf1: {name: "SBC", fn: (*CPU).sbc, mode: addrModeINDY, size: 2, cycles: 5},
	0xf3: {name: "ISC", fn: (*CPU).isc, mode: addrModeINDY, size: 2, cycles: 8},
	0xf4: {name: "NOP", fn: (*CPU).nop, mode: addrModeZPX, size: 2, cycles: 4},
	0xf5: {name: "SBC", fn: (*CPU).sbc, mode: addrModeZPX, size: 2, cycles: 4},
	0xf6: {name: "INC", fn: (*CPU).inc, mode: addrModeZPX, size: 2, cycles: 6},
	0xf7: {name: "ISC", fn: (*CPU).isc, mode: addrModeZPX, size: 2, cycles: 6},
	0xf8: {name: "SED", fn: (*CPU).sed, mode: addrModeIMP, size: 1, cycles: 2},
	0xf9: {name: "SBC", fn: (*CPU).sbc, mode: addrModeABSY, size: 3, cycles: 4},
	0xfa: {name: "NOP", fn: (*CPU).nop, mode: addrModeIMP, size: 1, cycles: 2},
	0xfb: {name: "ISC", fn: (*CPU).isc, mode: addrModeABSY, size: 3, cycles: 7},
	0xfc: {name: "NOP", fn: (*CPU).nop, mode: addrModeABSX, size: 3, cycles: 4},
	0xfd: {name: "SBC", fn: (*CPU).sbc, mode: addrModeABSX, size: 3, cycles: 4},
	0xfe: {name: "INC", fn: (*CPU).inc, mode: addrModeABSX, size: 3, cycles: 7},
	0xff: {name: "ISC", fn: (*CPU).isc, mode: addrModeABSX, size: 3, cycles: 7},
}

func lookupInstr(opcode uint8) (instr, bool) {
	in := instructions[opcode]
	return in, in.fn != nil
}

func opcodeIsSupported(opcode uint8) bool {
	_, ok := lookupInstr(opcode)
	return ok
}
