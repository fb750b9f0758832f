package nes

import (
	"errors"
	"fmt"
)

var (
	ErrBadHeader     = errors.New("bad iNES header")
	ErrSizeMismatch  = errors.New("iNES size mismatch")
	ErrUnknownMapper = errors.New("unrecognized mapper")
)

// IllegalOpcodeError is returned once the CPU decodes a byte that has no
// instruction. The CPU stays halted afterwards.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode %02X at %04X", e.Opcode, e.PC)
}
