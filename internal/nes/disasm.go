package nes

import (
	"fmt"
	"strings"
)

// disasmOperand formats the operand of the instruction at pc in assembler
// syntax. Only the instruction bytes are read.
func disasmOperand(mem ReadWriter, pc uint16, in instr) string {
	read16 := func(addr uint16) uint16 {
		return uint16(mem.Read8(addr)) | uint16(mem.Read8(addr+1))<<8
	}
	switch in.mode {
	case addrModeIMM:
		return fmt.Sprintf("#$%02X", mem.Read8(pc+1))
	case addrModeZP:
		return fmt.Sprintf("$%02X", mem.Read8(pc+1))
	case addrModeZPX:
		return fmt.Sprintf("$%02X,X", mem.Read8(pc+1))
	case addrModeZPY:
		return fmt.Sprintf("$%02X,Y", mem.Read8(pc+1))
	case addrModeABS:
		return fmt.Sprintf("$%04X", read16(pc+1))
	case addrModeABSX:
		return fmt.Sprintf("$%04X,X", read16(pc+1))
	case addrModeABSY:
		return fmt.Sprintf("$%04X,Y", read16(pc+1))
	case addrModeIND:
		return fmt.Sprintf("($%04X)", read16(pc+1))
	case addrModeINDX:
		return fmt.Sprintf("($%02X,X)", mem.Read8(pc+1))
	case addrModeINDY:
		return fmt.Sprintf("($%02X),Y", mem.Read8(pc+1))
	case addrModeREL:
		operand := uint16(mem.Read8(pc + 1))
		if operand&0x80 > 0 {
			operand |= 0xff00
		}
		return fmt.Sprintf("$%04X", pc+2+operand)
	case addrModeACC:
		return "A"
	}
	return ""
}

// Disassemble returns a map of addresses and their corresponding instructions
// from 0x0000 to 0xffff
func (c *CPU) Disassemble() map[uint16]string {
	return Disassemble(c.mem, 0x0000, 0xffff)
}

// Disassemble decodes instructions linearly between from and to inclusive.
// Unknown bytes are shown as ??? and skipped one at a time.
func Disassemble(mem ReadWriter, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	addr := uint32(from)
	for addr <= uint32(to) {
		pc := uint16(addr)
		in, ok := lookupInstr(mem.Read8(pc))
		if !ok {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}
		if operand := disasmOperand(mem, pc, in); operand != "" {
			disasm[pc] = fmt.Sprintf("$%04X: %s %s {%s}", pc, in.name, operand, in.mode)
		} else {
			disasm[pc] = fmt.Sprintf("$%04X: %s {%s}", pc, in.name, in.mode)
		}
		addr += uint32(in.size)
	}

	return disasm
}

// Trace formats the state before the instruction at pc the way the
// nestest reference log does.
func (c *CPU) Trace() string {
	opcode := c.read8(c.pc)
	in, ok := lookupInstr(opcode)

	var raw strings.Builder
	text := "???"
	size := uint16(1)
	if ok {
		size = uint16(in.size)
		text = strings.TrimSpace(in.name + " " + disasmOperand(c.mem, c.pc, in))
	}
	for i := uint16(0); i < size; i++ {
		if i > 0 {
			raw.WriteByte(' ')
		}
		fmt.Fprintf(&raw, "%02X", c.read8(c.pc+i))
	}

	return fmt.Sprintf("%04X  %-9s %-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.pc, raw.String(), text, c.a, c.x, c.y, c.p, c.sp, c.totalCycles)
}
