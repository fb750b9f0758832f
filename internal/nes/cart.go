package nes

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	inesMagic        = 0x1a53454e
	inesTrainerSize  = 512
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	vectorTableSize  = 6
)

type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

func (m Mirroring) String() string {
	if m == MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}

// Vectors are the interrupt entry points stored in the last six bytes of
// PRG data.
type Vectors struct {
	NMI   uint16
	Reset uint16
	IRQ   uint16
}

// NESFileData is the parsed content of an iNES image.
type NESFileData struct {
	MapperID   uint8
	PRGBanks   uint8 // 16 KB units
	CHRBanks   uint8 // 8 KB units, 0 means the board has CHR RAM
	Mirroring  Mirroring
	HasTrainer bool
	PRG        []uint8
	CHR        []uint8
	Vectors    Vectors
}

// ParseINES reads an iNES image.
// Supported NES format: iNES
func ParseINES(r io.Reader) (*NESFileData, error) {
	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %w: %s", ErrBadHeader, err)
	}
	if header.Magic != inesMagic {
		return nil, fmt.Errorf("signature %08X: %w", header.Magic, ErrBadHeader)
	}
	if header.PrgRomSize == 0 {
		return nil, fmt.Errorf("no PRG ROM banks: %w", ErrBadHeader)
	}

	data := &NESFileData{
		PRGBanks: header.PrgRomSize,
		CHRBanks: header.ChrRomSize,
		// flag6 and flag7 contain part of the mapper ID in 4 high bits
		// flag6: lower 4 bits of mapper ID
		// flag7: upper 4 bits of mapper ID
		MapperID:   (header.Flags7 & 0xf0) | (header.Flags6 >> 4),
		Mirroring:  Mirroring(header.Flags6 & 0x1),
		HasTrainer: header.Flags6&0x4 != 0,
		PRG:        make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes),
		CHR:        make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes),
	}

	// the third bit of flags6 is the trainer flag
	if data.HasTrainer {
		if _, err := io.CopyN(io.Discard, r, inesTrainerSize); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %w: %s", ErrSizeMismatch, err)
		}
	}
	if n, err := io.ReadFull(r, data.PRG); err != nil {
		return nil, fmt.Errorf("PRG ROM: expected %d bytes, read %d: %w", len(data.PRG), n, ErrSizeMismatch)
	}
	if n, err := io.ReadFull(r, data.CHR); err != nil {
		return nil, fmt.Errorf("CHR ROM: expected %d bytes, read %d: %w", len(data.CHR), n, ErrSizeMismatch)
	}
	if n, _ := io.Copy(io.Discard, r); n > 0 {
		log.Printf("ines: ignoring %d trailing bytes\n", n)
	}

	vectors := data.PRG[len(data.PRG)-vectorTableSize:]
	data.Vectors = Vectors{
		NMI:   binary.LittleEndian.Uint16(vectors[0:]),
		Reset: binary.LittleEndian.Uint16(vectors[2:]),
		IRQ:   binary.LittleEndian.Uint16(vectors[4:]),
	}
	return data, nil
}

// Cart is a cartridge plugged into the console: the parsed image plus the
// mapper that decodes addresses for it.
type Cart struct {
	data   *NESFileData
	mapper Mapper
}

func NewCart(data *NESFileData) (*Cart, error) {
	mapper, err := NewMapper(data)
	if err != nil {
		return nil, err
	}
	return &Cart{data: data, mapper: mapper}, nil
}

// NewCartFromFile reads a .nes file and returns a Cart struct.
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	data, err := ParseINES(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewCart(data)
}

func (c *Cart) Data() *NESFileData {
	return c.data
}

func (c *Cart) Mirroring() Mirroring {
	return c.data.Mirroring
}

// Read8 and Write8 are the CPU side of the cartridge.
func (c *Cart) Read8(addr uint16) uint8 {
	return c.mapper.ReadPRG(addr)
}

func (c *Cart) Write8(addr uint16, data uint8) {
	c.mapper.WritePRG(addr, data)
}

// CHR returns the PPU side of the cartridge, $0000-$1FFF.
func (c *Cart) CHR() ReadWriter {
	return chrPort{c.mapper}
}

type chrPort struct {
	mapper Mapper
}

func (p chrPort) Read8(addr uint16) uint8 {
	return p.mapper.ReadCHR(addr)
}

func (p chrPort) Write8(addr uint16, data uint8) {
	p.mapper.WriteCHR(addr, data)
}
