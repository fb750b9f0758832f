package nes

import "log"

// $0000-$07FF: Internal RAM
// $0800-$1FFF: Mirrors of $0000-$07FF
// $2000-$2007: PPU registers
// $2008-$3FFF: Mirrors of $2000-$2007 (every 8 bytes)
// $4000-$4013, $4015: APU registers, not emulated
// $4014: OAM DMA
// $4016-$4017: Controller ports
// $4018-$401F: APU and I/O functionality that is normally disabled
// $4020-$FFFF: Cartridge space, including PRG-ROM, PRG-RAM, and mapper registers
const (
	ramEndAddr     = 0x1fff
	ppuRegsEndAddr = 0x3fff
	oamDMAAddr     = 0x4014
	joy1Addr       = 0x4016
	joy2Addr       = 0x4017
	ioEndAddr      = 0x401f
	ramMirrorMask  = 0x07ff
	ppuRegsMask    = 0x0007
	joyOpenBusBits = 0x40
)

// RegisterPort is the CPU side of the PPU: eight registers selected by the
// low three address bits.
type RegisterPort interface {
	ReadRegister(reg uint16) uint8
	WriteRegister(reg uint16, data uint8)
}

// InputPort is a device on $4016/$4017. Read returns the serial data bit in
// bit 0. Write receives the value written to $4016.
type InputPort interface {
	Read() uint8
	Write(data uint8)
}

// DMATrigger starts an OAM DMA from a CPU page.
type DMATrigger interface {
	Start(page uint8)
}

// DataBus routes CPU accesses to the device owning the address. It owns
// none of them: the Console attaches and replaces references.
type DataBus struct {
	ram   ReadWriter
	ppu   RegisterPort
	cart  ReadWriter
	ports [2]InputPort
	dma   DMATrigger

	openBus uint8 // last value driven on the bus
}

func NewDataBus(ram ReadWriter, ppu RegisterPort) *DataBus {
	return &DataBus{ram: ram, ppu: ppu}
}

func (b *DataBus) AttachCart(cart ReadWriter) {
	b.cart = cart
}

func (b *DataBus) AttachController(port int, c InputPort) {
	if port < 0 || port >= len(b.ports) {
		log.Printf("databus: no controller port %d\n", port)
		return
	}
	b.ports[port] = c
}

func (b *DataBus) AttachDMA(dma DMATrigger) {
	b.dma = dma
}

// OpenBus returns the last value seen on the data lines.
func (b *DataBus) OpenBus() uint8 {
	return b.openBus
}

func (b *DataBus) Read8(addr uint16) uint8 {
	b.openBus = b.read8(addr)
	return b.openBus
}

func (b *DataBus) read8(addr uint16) uint8 {
	switch {
	case addr <= ramEndAddr:
		return b.ram.Read8(addr & ramMirrorMask)
	case addr <= ppuRegsEndAddr:
		return b.ppu.ReadRegister(addr & ppuRegsMask)
	case addr == joy1Addr || addr == joy2Addr:
		port := b.ports[addr-joy1Addr]
		if port == nil {
			return joyOpenBusBits
		}
		return port.Read()&0x1 | joyOpenBusBits
	case addr <= ioEndAddr:
		return b.openBus
	}

	if b.cart == nil {
		return b.openBus
	}
	return b.cart.Read8(addr)
}

func (b *DataBus) Write8(addr uint16, data uint8) {
	b.openBus = data

	switch {
	case addr <= ramEndAddr:
		b.ram.Write8(addr&ramMirrorMask, data)
	case addr <= ppuRegsEndAddr:
		b.ppu.WriteRegister(addr&ppuRegsMask, data)
	case addr == oamDMAAddr:
		if b.dma != nil {
			b.dma.Start(data)
		}
	case addr == joy1Addr:
		for _, port := range b.ports {
			if port != nil {
				port.Write(data)
			}
		}
	case addr <= ioEndAddr:
	default:
		if b.cart != nil {
			b.cart.Write8(addr, data)
		}
	}
}
