package nes

import (
	"fmt"
	"log"
)

const (
	prgRAMSizeBytes = 0x2000
	chrRAMSizeBytes = 0x2000
)

// Mapper translates CPU ($4020-$FFFF) and PPU ($0000-$1FFF) addresses into
// cartridge memory.
type Mapper interface {
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, data uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
}

func NewMapper(data *NESFileData) (Mapper, error) {
	switch data.MapperID {
	case 0:
		return newMapper0(data), nil
	}
	return nil, fmt.Errorf("mapper %d: %w", data.MapperID, ErrUnknownMapper)
}

// Mapper0 is NROM: 16 or 32 KB PRG ROM at $8000, 8 KB CHR ROM or RAM and
// 8 KB PRG RAM at $6000.
type Mapper0 struct {
	prg    *Memory
	prgRAM *Memory
	chr    *Memory
}

func newMapper0(data *NESFileData) *Mapper0 {
	m := &Mapper0{
		// one bank is mirrored into $C000-$FFFF by the modulo
		prg:    NewROM(data.PRG),
		prgRAM: NewMemory(prgRAMSizeBytes, true),
	}
	if len(data.CHR) == 0 {
		m.chr = NewMemory(chrRAMSizeBytes, true)
	} else {
		m.chr = NewROM(data.CHR)
	}
	return m
}

func (m *Mapper0) ReadPRG(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.prg.Read8(addr & 0x7fff)
	case addr >= 0x6000:
		return m.prgRAM.Read8(addr & 0x1fff)
	}
	return 0
}

func (m *Mapper0) WritePRG(addr uint16, data uint8) {
	switch {
	case addr >= 0x8000:
		// ROM
	case addr >= 0x6000:
		m.prgRAM.Write8(addr&0x1fff, data)
	default:
		log.Printf("unhandled mapper0 address: %04X\n", addr)
	}
}

func (m *Mapper0) ReadCHR(addr uint16) uint8 {
	return m.chr.Read8(addr & 0x1fff)
}

func (m *Mapper0) WriteCHR(addr uint16, data uint8) {
	m.chr.Write8(addr&0x1fff, data)
}
