package nes

import (
	"fmt"
	"image"
	"log"
)

const (
	ppuTicsPerCPUTic = 3
	// upper bound for StepFrame so a stuck PPU cannot hang the caller
	maxTicsPerFrame = dotsPerLine * linesPerFrame * 2
)

// Console owns every device of the machine and drives them from the master
// clock: each Tic is one PPU dot and every third Tic is one CPU cycle.
type Console struct {
	cpu         *CPU
	ppu         *PPU
	ram         *RAM
	dma         *DMA
	bus         *DataBus
	controllers [2]*Controller
	frame       *Frame
	cart        *Cart

	ticCounter   uint64
	cpuCycles    uint64 // including cycles stolen by DMA
	instructions uint64
	dmaHalted    bool // the halt cycle of the current DMA was spent

	trace *log.Logger
	err   error
}

func NewConsole() *Console {
	c := &Console{
		ram:   NewRAM(),
		ppu:   NewPPU(),
		frame: NewFrame(),
	}
	c.bus = NewDataBus(c.ram, c.ppu)
	c.cpu = NewCPU(c.bus)
	c.dma = NewDMA(c.bus)
	c.bus.AttachDMA(c.dma)
	c.ppu.AttachSink(c.frame)
	for i := range c.controllers {
		c.controllers[i] = NewController()
		c.bus.AttachController(i, c.controllers[i])
	}
	return c
}

// LoadCart inserts a cartridge and powers the console on.
func (c *Console) LoadCart(cart *Cart) {
	c.cart = cart
	c.bus.AttachCart(cart)
	c.ppu.AttachCart(cart.CHR(), cart.Mirroring())
	c.PowerOn()
}

// PowerOn clears RAM and brings every device to its power-up state.
func (c *Console) PowerOn() {
	c.ram = NewRAM()
	c.bus.ram = c.ram
	c.ppu.Reset()
	c.cpu.PowerOn()
	c.resetClock()
}

// Reset presses the reset button. RAM keeps its content.
func (c *Console) Reset() {
	c.ppu.Reset()
	c.cpu.Reset()
	c.resetClock()
}

func (c *Console) resetClock() {
	c.dma.active = false
	c.dmaHalted = false
	c.ticCounter = 0
	c.cpuCycles = 0
	c.instructions = 0
	c.err = nil
}

// SetTrace logs a nestest-style line before every instruction. nil turns
// tracing off.
func (c *Console) SetTrace(l *log.Logger) {
	c.trace = l
}

// Tic advances the master clock by one PPU cycle. Once the CPU meets an
// unknown opcode the console stops and every call returns the same
// *IllegalOpcodeError.
func (c *Console) Tic() error {
	if c.err != nil {
		return c.err
	}

	c.ppu.Tic()
	if c.ticCounter%ppuTicsPerCPUTic == 0 {
		c.cpuTic()
	}
	c.cpu.SetNMI(c.ppu.NMILine())
	c.ticCounter++

	return c.err
}

// cpuTic spends one CPU cycle on exactly one of the CPU or the DMA unit.
// DMA takes over at the next instruction boundary; its first cycle there
// is the halt cycle.
func (c *Console) cpuTic() {
	get := c.cpuCycles%2 == 0
	c.cpuCycles++

	if c.dma.Active() && c.cpu.InstructionDone() {
		if !c.dmaHalted {
			c.dmaHalted = true
			return
		}
		c.dma.Tic(get)
		if !c.dma.Active() {
			c.dmaHalted = false
		}
		return
	}

	if c.trace != nil && c.cpu.InstructionDone() && !c.cpu.Halted() {
		c.trace.Println(c.cpu.Trace())
	}

	res := c.cpu.Tic()
	switch res.Kind {
	case StepExecuted, StepInterrupt:
		c.instructions++
	case StepIllegal:
		c.err = res.Err()
		log.Printf("console halted: %s\n", c.err)
	}
}

// StepInstruction runs the master clock until the CPU has started one
// instruction (or interrupt sequence) and spent all its cycles.
func (c *Console) StepInstruction() error {
	start := c.instructions
	for c.instructions == start {
		if err := c.Tic(); err != nil {
			return err
		}
	}
	for !c.cpu.InstructionDone() {
		if err := c.Tic(); err != nil {
			return err
		}
	}
	return nil
}

// StepFrame runs the master clock until the PPU starts a new frame.
func (c *Console) StepFrame() error {
	frame := c.ppu.Frame()
	for i := 0; c.ppu.Frame() == frame; i++ {
		if i > maxTicsPerFrame {
			return fmt.Errorf("frame %d did not finish after %d tics", frame, i)
		}
		if err := c.Tic(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) CPU() *CPU {
	return c.cpu
}

func (c *Console) PPU() *PPU {
	return c.ppu
}

func (c *Console) Bus() *DataBus {
	return c.bus
}

func (c *Console) DMA() *DMA {
	return c.dma
}

func (c *Console) Cart() *Cart {
	return c.cart
}

// Controller returns the pad plugged in port 0 or 1.
func (c *Console) Controller(port int) *Controller {
	return c.controllers[port&0x1]
}

// Screen returns the last rendered picture, updated in place.
func (c *Console) Screen() *image.RGBA {
	return c.frame.Image()
}

// Err returns the error that stopped the console, if any.
func (c *Console) Err() error {
	return c.err
}

// Cycles returns the CPU cycles elapsed since power-on, including the
// ones taken by DMA.
func (c *Console) Cycles() uint64 {
	return c.cpuCycles
}

// DebugInfo is a snapshot for debug overlays.
type DebugInfo struct {
	Registers
	Scanline int
	Dot      int
	Frame    uint64
	Cycles   uint64
}

func (c *Console) DebugInfo() DebugInfo {
	return DebugInfo{
		Registers: c.cpu.Registers(),
		Scanline:  c.ppu.Scanline(),
		Dot:       c.ppu.Dot(),
		Frame:     c.ppu.Frame(),
		Cycles:    c.cpuCycles,
	}
}

// StatusString shows the status flags as NVUBDIZC, lowercase when clear.
func (r Registers) StatusString() string {
	const names = "CZIDBUVN"
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ch := names[i]
		if r.P&(1<<i) == 0 {
			ch += 'a' - 'A'
		}
		out[7-i] = ch
	}
	return string(out)
}
