package nes

import (
	"log"
)

const (
	stackStartAddr = uint16(0x100)

	vectorNMI   = uint16(0xfffa)
	vectorReset = uint16(0xfffc)
	vectorIRQ   = uint16(0xfffe)

	interruptCycles = 7
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, always reads as 1
	flagV                    // Overflow
	flagN                    // Negative
)

// StepKind tells what happened during one CPU cycle.
type StepKind uint8

const (
	StepIdle      StepKind = iota // counting down the current instruction
	StepExecuted                  // a new instruction was fetched and executed
	StepInterrupt                 // an NMI or IRQ sequence was started
	StepIllegal                   // the CPU is halted on an unknown opcode
)

func (k StepKind) String() string {
	switch k {
	case StepIdle:
		return "idle"
	case StepExecuted:
		return "executed"
	case StepInterrupt:
		return "interrupt"
	case StepIllegal:
		return "illegal"
	}
	return "???"
}

// StepResult is returned by every CPU cycle. Opcode and PC describe the
// instruction that was started (or refused) on this cycle.
type StepResult struct {
	Kind   StepKind
	Opcode uint8
	PC     uint16
}

// Err converts an illegal step into an error, nil otherwise.
func (r StepResult) Err() error {
	if r.Kind != StepIllegal {
		return nil
	}
	return &IllegalOpcodeError{Opcode: r.Opcode, PC: r.PC}
}

type CPU struct {
	a   uint8  // accumulator
	x   uint8  // index X
	y   uint8  // index Y
	p   uint8  // status, see flagX
	sp  uint8  // stack pointer into page 1
	pc  uint16 // program counter
	mem ReadWriter

	cycles      uint8  // cycles spent in the current instruction
	instrCycles uint8  // cycles the current instruction needs in total
	totalCycles uint64 // cycles since reset

	// operand of the instruction being executed
	addrMode    addrMode
	operandAddr uint16
	pageCrossed bool

	nmiLine    bool // last observed level of the NMI input
	nmiPending bool
	irqLine    bool // level-held IRQ input
	irqPending bool // latched IRQ request

	halted     bool
	haltOpcode uint8
	haltPC     uint16
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func NewCPU(mem ReadWriter) *CPU {
	return &CPU{
		mem: mem,
		p:   flagU,
	}
}

// ConnectBus replaces the memory the CPU talks to. The CPU does not own it.
func (c *CPU) ConnectBus(mem ReadWriter) {
	c.mem = mem
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
	} else {
		c.p &= ^flag
	}
	c.p |= flagU
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	c.stackPush8(uint8(data >> 8))
	c.stackPush8(uint8(data & 0xff))
}

// PowerOn puts the CPU in its power-up state and runs the reset sequence.
func (c *CPU) PowerOn() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0
	c.p = flagU
	c.totalCycles = 0
	c.Reset()
}

// Reset runs the reset sequence: the stack pointer drops by three without
// writing, interrupts are disabled and PC is loaded from the reset vector.
// The sequence takes 7 cycles before the first instruction is fetched.
func (c *CPU) Reset() {
	c.sp -= 3
	c.setFlag(flagI, true)
	c.pc = c.read16(vectorReset)
	c.cycles = 0
	c.instrCycles = interruptCycles
	c.nmiPending = false
	c.irqPending = false
	c.halted = false
}

// SetNMI drives the NMI input. Only a low to high transition requests an
// interrupt, holding the line high does nothing more.
func (c *CPU) SetNMI(level bool) {
	if level && !c.nmiLine {
		c.nmiPending = true
	}
	c.nmiLine = level
}

// NMI requests a non-maskable interrupt regardless of the line level.
func (c *CPU) NMI() {
	c.nmiPending = true
}

// IRQ latches a maskable interrupt request. It is serviced at the first
// instruction boundary where the I flag is clear.
func (c *CPU) IRQ() {
	c.irqPending = true
}

// SetIRQ drives a level-held IRQ input.
func (c *CPU) SetIRQ(level bool) {
	c.irqLine = level
}

// InstructionDone reports whether the next Tic starts a new instruction.
func (c *CPU) InstructionDone() bool {
	return c.cycles >= c.instrCycles
}

func (c *CPU) Halted() bool {
	return c.halted
}

func (c *CPU) TotalCycles() uint64 {
	return c.totalCycles
}

// Tic runs one CPU cycle. Instructions execute on their first cycle; the
// remaining cycles only count down.
func (c *CPU) Tic() StepResult {
	if c.halted {
		return StepResult{Kind: StepIllegal, Opcode: c.haltOpcode, PC: c.haltPC}
	}

	if c.cycles < c.instrCycles {
		c.cycles++
		c.totalCycles++
		return StepResult{Kind: StepIdle}
	}

	if c.nmiPending {
		c.nmiPending = false
		return c.interrupt(vectorNMI)
	}
	if (c.irqPending || c.irqLine) && !c.getFlag(flagI) {
		c.irqPending = false
		return c.interrupt(vectorIRQ)
	}

	return c.execute()
}

func (c *CPU) interrupt(vector uint16) StepResult {
	pc := c.pc
	c.stackPush16(c.pc)
	c.stackPush8((c.p | flagU) &^ flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(vector)
	c.begin(interruptCycles)
	return StepResult{Kind: StepInterrupt, PC: pc}
}

func (c *CPU) execute() StepResult {
	pc := c.pc
	opcode := c.read8(pc)
	in, ok := lookupInstr(opcode)
	if !ok {
		c.halted = true
		c.haltOpcode = opcode
		c.haltPC = pc
		log.Printf("unsupported opcode %02X. PC: %04X. halting...\n", opcode, pc)
		return StepResult{Kind: StepIllegal, Opcode: opcode, PC: pc}
	}

	c.addrMode = in.mode
	c.operandAddr, c.pageCrossed = c.resolve(in.mode)
	c.instrCycles = in.cycles
	in.fn(c)
	if !in.setsPC {
		c.pc += uint16(in.size)
	}
	c.begin(c.instrCycles)

	c.addrMode = 0
	c.operandAddr = 0
	c.pageCrossed = false
	return StepResult{Kind: StepExecuted, Opcode: opcode, PC: pc}
}

// begin accounts the first cycle of a sequence of n cycles.
func (c *CPU) begin(n uint8) {
	c.instrCycles = n
	c.cycles = 1
	c.totalCycles++
}

// operand loads the value the current instruction works on.
func (c *CPU) operand() uint8 {
	if c.addrMode == addrModeACC {
		return c.a
	}
	return c.read8(c.operandAddr)
}

// store writes the result of a read-modify-write instruction back.
func (c *CPU) store(data uint8) {
	if c.addrMode == addrModeACC {
		c.a = data
		return
	}
	c.write8(c.operandAddr, data)
}

// Registers is a snapshot of the programmer visible CPU state.
type Registers struct {
	A, X, Y, P, SP uint8
	PC             uint16
}

func (c *CPU) Registers() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, P: c.p, SP: c.sp, PC: c.pc}
}

// SetPC moves execution to addr, as test harnesses starting at a fixed
// entry point do.
func (c *CPU) SetPC(addr uint16) {
	c.pc = addr
}
