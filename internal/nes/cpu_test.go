package nes

import (
	"encoding/json"
	"errors"
	"os"
	"path"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

// newTestCPU maps program at 0x8000, points the reset vector there and
// runs the reset sequence.
func newTestCPU(t *testing.T, program ...uint8) (*CPU, *Memory) {
	t.Helper()
	mem := NewMemory(0x10000, false)
	for i, b := range program {
		mem.Write8(0x8000+uint16(i), b)
	}
	mem.Write8(vectorReset, 0x00)
	mem.Write8(vectorReset+1, 0x80)

	cpu := NewCPU(mem)
	cpu.PowerOn()
	for !cpu.InstructionDone() {
		cpu.Tic()
	}
	return cpu, mem
}

// runInstruction runs one instruction (or interrupt sequence) to its last
// cycle and returns the first step and the cycles spent.
func runInstruction(cpu *CPU) (StepResult, int) {
	res := cpu.Tic()
	n := 1
	for !cpu.InstructionDone() {
		cpu.Tic()
		n++
	}
	return res, n
}

func Test_ADC(t *testing.T) {
	type testArgs struct {
		initA          uint8
		operandValue   uint8
		initP          uint8
		expectedA      uint8
		expectedP      uint8
		pageCrossed    bool
		expectedCycles uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		mem := new(memMock)
		mem.On("Read8", uint16(0x10)).Return(in.operandValue)

		cpu := NewCPU(mem)
		cpu.a = in.initA
		cpu.p = in.initP
		cpu.addrMode = addrModeZP
		cpu.operandAddr = 0x10
		cpu.pageCrossed = in.pageCrossed

		cpu.adc()

		assert.Equal(t, in.expectedA, cpu.a, "A register")
		assert.Equal(t, in.expectedP, cpu.p, "P register")
		assert.Equal(t, in.expectedCycles, cpu.instrCycles, "Cycles")
		mem.AssertExpectations(t)
	}

	t.Run("zero result, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0,
			operandValue: 0,
			initP:        0,
			expectedA:    0,
			expectedP:    flagU | flagZ,
		})
	})

	t.Run("simple addition, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x10,
			operandValue: 0x20,
			initP:        0,
			expectedA:    0x30,
			expectedP:    flagU,
		})
	})

	t.Run("overflow with carry set", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x1,
			initP:        0,
			expectedA:    0,
			expectedP:    flagU | flagZ | flagC,
		})
	})

	t.Run("negative result with overflow", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x7f,
			operandValue: 0x1,
			initP:        0,
			expectedA:    0x80,
			expectedP:    flagU | flagN | flagV,
		})
	})

	t.Run("simple addition with overflow, result is negative", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			initP:        0,
			expectedA:    0xa0,
			expectedP:    flagU | flagN | flagV,
		})
	})

	t.Run("addition with carry in, result is negative", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			initP:        flagC,
			expectedA:    0xa1,
			expectedP:    flagU | flagN | flagV,
		})
	})

	t.Run("overflow with carry in, result is positive", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x1,
			initP:        flagC,
			expectedA:    0x01,
			expectedP:    flagU | flagC,
		})
	})

	t.Run("addition with carry in, zero result", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x00,
			initP:        flagC,
			expectedA:    0x00,
			expectedP:    flagU | flagZ | flagC,
		})
	})

	t.Run("add cycle if page crossed", func(t *testing.T) {
		testDo(t, testArgs{
			initA:          0,
			operandValue:   0,
			initP:          0,
			expectedA:      0,
			expectedP:      flagU | flagZ,
			pageCrossed:    true,
			expectedCycles: 1,
		})
	})
}

func Test_AND(t *testing.T) {
	type testArgs struct {
		initA          uint8
		operandValue   uint8
		initP          uint8
		expectedA      uint8
		expectedP      uint8
		pageCrossed    bool
		expectedCycles uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		mem := new(memMock)
		mem.On("Read8", uint16(0x1234)).Return(in.operandValue)

		cpu := NewCPU(mem)
		cpu.a = in.initA
		cpu.p = in.initP
		cpu.addrMode = addrModeABSX
		cpu.operandAddr = 0x1234
		cpu.pageCrossed = in.pageCrossed

		cpu.and()

		assert.Equal(t, in.expectedA, cpu.a, "A register")
		assert.Equal(t, in.expectedP, cpu.p, "P register")
		assert.Equal(t, in.expectedCycles, cpu.instrCycles, "Cycles")
	}

	t.Run("ff&0f=0f", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x0f,
			expectedA:    0x0f,
			expectedP:    flagU,
		})
	})

	t.Run("ff&00=00", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x00,
			expectedA:    0x00,
			expectedP:    flagU | flagZ,
		})
	})

	t.Run("ff&ff=ff", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0xff,
			expectedA:    0xff,
			expectedP:    flagU | flagN,
		})
	})

	t.Run("add cycle if page crossed", func(t *testing.T) {
		testDo(t, testArgs{
			initA:          0,
			operandValue:   0,
			expectedA:      0,
			expectedP:      flagU | flagZ,
			pageCrossed:    true,
			expectedCycles: 1,
		})
	})
}

func Test_ASL(t *testing.T) {
	accCases := []struct {
		name      string
		initA     uint8
		expectedA uint8
		expectedP uint8
	}{
		{name: "ACC with carry", initA: 0x83, expectedA: 0x06, expectedP: flagU | flagC},
		{name: "ACC with negative", initA: 0x41, expectedA: 0x82, expectedP: flagU | flagN},
		{name: "ACC with zero", initA: 0x00, expectedA: 0x00, expectedP: flagU | flagZ},
	}
	for _, tc := range accCases {
		t.Run(tc.name, func(t *testing.T) {
			cpu := NewCPU(nil)
			cpu.a = tc.initA
			cpu.p = 0
			cpu.addrMode = addrModeACC

			cpu.asl()

			assert.Equal(t, tc.expectedA, cpu.a, "A register")
			assert.Equal(t, tc.expectedP, cpu.p, "P register")
		})
	}

	t.Run("ZP simple", func(t *testing.T) {
		expectedAddr := uint16(0xff)
		expectedValue := uint8(0x24)
		mem := new(memMock)
		mem.On("Read8", expectedAddr).Return(uint8(0x12))
		mem.On("Write8", expectedAddr, expectedValue).Return()

		cpu := NewCPU(mem)
		cpu.p = 0
		cpu.operandAddr = expectedAddr
		cpu.addrMode = addrModeZP

		cpu.asl()

		assert.Equal(t, flagU, cpu.p, "P register")
		mem.AssertExpectations(t)
	})
}

func Test_StoreDoesNotRead(t *testing.T) {
	// a store to PPUSTATUS must not clear VBlank through a dummy read
	mem := new(memMock)
	mem.On("Write8", uint16(0x2002), uint8(0x42)).Return()

	cpu := NewCPU(mem)
	cpu.a = 0x42
	cpu.addrMode = addrModeABS
	cpu.operandAddr = 0x2002

	cpu.sta()

	mem.AssertExpectations(t)
	mem.AssertNotCalled(t, "Read8", mock.Anything)
}

func Test_SBCUndoesADC(t *testing.T) {
	cpu := NewCPU(nil)
	cpu.addrMode = addrModeACC
	for a := 0; a < 0x100; a++ {
		for d := 0; d < 0x100; d++ {
			for _, carry := range []bool{false, true} {
				cpu.a = uint8(a)
				cpu.setFlag(flagC, carry)
				cpu.addWithCarry(uint8(d))
				if cpu.getFlag(flagV) {
					continue
				}
				// SBC borrows what ADC carried in
				cpu.setFlag(flagC, !carry)
				cpu.addWithCarry(^uint8(d))
				if cpu.a != uint8(a) {
					t.Fatalf("a=%02X d=%02X c=%v: got %02X", a, d, carry, cpu.a)
				}
			}
		}
	}
}

func Test_SBC(t *testing.T) {
	cases := []struct {
		name      string
		a, m, p   uint8
		expectedA uint8
		expectedP uint8
	}{
		{name: "no borrow", a: 0x50, m: 0x10, p: flagC, expectedA: 0x40, expectedP: flagU | flagC},
		{name: "borrow", a: 0x10, m: 0x20, p: flagC, expectedA: 0xf0, expectedP: flagU | flagN},
		{name: "borrow in", a: 0x10, m: 0x10, p: 0, expectedA: 0xff, expectedP: flagU | flagN},
		{name: "signed overflow", a: 0x80, m: 0x01, p: flagC, expectedA: 0x7f, expectedP: flagU | flagC | flagV},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := NewMemory(0x100, false)
			mem.Write8(0x20, tc.m)
			cpu := NewCPU(mem)
			cpu.a = tc.a
			cpu.p = tc.p
			cpu.addrMode = addrModeZP
			cpu.operandAddr = 0x20

			cpu.sbc()

			assert.Equal(t, tc.expectedA, cpu.a)
			assert.Equal(t, tc.expectedP, cpu.p)
		})
	}
}

func Test_BranchTiming(t *testing.T) {
	t.Run("not taken", func(t *testing.T) {
		cpu, _ := newTestCPU(t, 0xa9, 0x00, 0xd0, 0x02) // LDA #0; BNE +2
		runInstruction(cpu)
		_, cycles := runInstruction(cpu)
		assert.Equal(t, 2, cycles)
		assert.Equal(t, uint16(0x8004), cpu.pc)
	})

	t.Run("taken, same page", func(t *testing.T) {
		cpu, _ := newTestCPU(t, 0xa9, 0x01, 0xd0, 0x02) // LDA #1; BNE +2
		runInstruction(cpu)
		_, cycles := runInstruction(cpu)
		assert.Equal(t, 3, cycles)
		assert.Equal(t, uint16(0x8006), cpu.pc)
	})

	t.Run("taken, page crossed", func(t *testing.T) {
		program := make([]uint8, 0xf2)
		program[0] = 0xa9 // LDA #1
		program[1] = 0x01
		program[2] = 0x4c // JMP $80F0
		program[3] = 0xf0
		program[4] = 0x80
		program[0xf0] = 0xd0 // BNE +$20
		program[0xf1] = 0x20
		cpu, _ := newTestCPU(t, program...)
		runInstruction(cpu)
		runInstruction(cpu)
		_, cycles := runInstruction(cpu)
		assert.Equal(t, 4, cycles)
		assert.Equal(t, uint16(0x8112), cpu.pc)
	})

	t.Run("taken backwards across page", func(t *testing.T) {
		program := make([]uint8, 0x0a)
		program[0] = 0x4c // JMP $8004
		program[1] = 0x04
		program[2] = 0x80
		program[4] = 0xb0 // BCS -8
		program[5] = 0xf8
		cpu, _ := newTestCPU(t, program...)
		cpu.p |= flagC
		runInstruction(cpu)
		_, cycles := runInstruction(cpu)
		assert.Equal(t, 4, cycles)
		assert.Equal(t, uint16(0x7ffe), cpu.pc)
	})
}

func Test_JSRRTS(t *testing.T) {
	cpu, mem := newTestCPU(t, 0x20, 0x00, 0x90) // JSR $9000
	mem.Write8(0x9000, 0x60)                    // RTS
	sp := cpu.sp

	_, cycles := runInstruction(cpu)
	assert.Equal(t, 6, cycles)
	assert.Equal(t, uint16(0x9000), cpu.pc)
	assert.Equal(t, sp-2, cpu.sp)
	// the return address points at the last byte of JSR
	assert.Equal(t, uint8(0x80), mem.Read8(stackStartAddr|uint16(sp)))
	assert.Equal(t, uint8(0x02), mem.Read8(stackStartAddr|uint16(sp-1)))

	_, cycles = runInstruction(cpu)
	assert.Equal(t, 6, cycles)
	assert.Equal(t, uint16(0x8003), cpu.pc)
	assert.Equal(t, sp, cpu.sp)
}

func Test_BRKRTI(t *testing.T) {
	cpu, mem := newTestCPU(t, 0x00, 0xff, 0xea) // BRK; padding; NOP
	mem.Write8(vectorIRQ, 0x00)
	mem.Write8(vectorIRQ+1, 0x90)
	mem.Write8(0x9000, 0x40) // RTI
	cpu.p = flagU | flagC
	sp := cpu.sp

	_, cycles := runInstruction(cpu)
	assert.Equal(t, 7, cycles)
	assert.Equal(t, uint16(0x9000), cpu.pc)
	assert.True(t, cpu.getFlag(flagI))
	assert.Equal(t, flagU|flagB|flagC, mem.Read8(stackStartAddr|uint16(sp-2)), "pushed status")

	runInstruction(cpu)
	assert.Equal(t, uint16(0x8002), cpu.pc)
	assert.Equal(t, flagU|flagC, cpu.p)
	assert.Equal(t, sp, cpu.sp)
}

func Test_NMIEdgeTrigger(t *testing.T) {
	cpu, mem := newTestCPU(t, 0xea, 0xea, 0xea, 0xea) // NOPs
	mem.Write8(vectorNMI, 0x00)
	mem.Write8(vectorNMI+1, 0x90)
	for i := uint16(0); i < 4; i++ {
		mem.Write8(0x9000+i, 0xea)
	}

	cpu.SetNMI(true)
	cpu.SetNMI(true)

	res, cycles := runInstruction(cpu)
	require.Equal(t, StepInterrupt, res.Kind)
	assert.Equal(t, 7, cycles)
	assert.Equal(t, uint16(0x8000), res.PC)
	assert.Equal(t, uint16(0x9000), cpu.pc)

	// the line is still high: no second interrupt
	cpu.SetNMI(true)
	res, _ = runInstruction(cpu)
	assert.Equal(t, StepExecuted, res.Kind)

	cpu.SetNMI(false)
	cpu.SetNMI(true)
	res, _ = runInstruction(cpu)
	assert.Equal(t, StepInterrupt, res.Kind)

	// forced request while the line stays high
	cpu.NMI()
	res, _ = runInstruction(cpu)
	assert.Equal(t, StepInterrupt, res.Kind)
}

func Test_NMINotTakenMidInstruction(t *testing.T) {
	cpu, mem := newTestCPU(t, 0xad, 0x00, 0x02, 0xea) // LDA $0200; NOP
	mem.Write8(vectorNMI, 0x00)
	mem.Write8(vectorNMI+1, 0x90)

	res := cpu.Tic()
	require.Equal(t, StepExecuted, res.Kind)
	cpu.SetNMI(true)
	for !cpu.InstructionDone() {
		assert.Equal(t, StepIdle, cpu.Tic().Kind)
	}
	assert.Equal(t, StepInterrupt, cpu.Tic().Kind)
}

func Test_IRQMasked(t *testing.T) {
	cpu, mem := newTestCPU(t, 0xea, 0x58, 0xea) // NOP; CLI; NOP
	mem.Write8(vectorIRQ, 0x00)
	mem.Write8(vectorIRQ+1, 0x90)

	cpu.IRQ()
	res, _ := runInstruction(cpu)
	assert.Equal(t, StepExecuted, res.Kind, "I is set after reset")
	res, _ = runInstruction(cpu)
	assert.Equal(t, StepExecuted, res.Kind)

	res, _ = runInstruction(cpu)
	assert.Equal(t, StepInterrupt, res.Kind)
	assert.Equal(t, uint16(0x9000), cpu.pc)
	assert.True(t, cpu.getFlag(flagI))
}

func Test_IllegalOpcode(t *testing.T) {
	cpu, _ := newTestCPU(t, 0xa2, 0x05, 0x02) // LDX #5; KIL
	runInstruction(cpu)

	res := cpu.Tic()
	assert.Equal(t, StepIllegal, res.Kind)
	assert.Equal(t, uint8(0x02), res.Opcode)
	assert.Equal(t, uint16(0x8002), res.PC)
	assert.True(t, cpu.Halted())

	var illegal *IllegalOpcodeError
	require.True(t, errors.As(res.Err(), &illegal))
	assert.Equal(t, uint8(0x02), illegal.Opcode)

	// state is still there to inspect and the CPU stays put
	assert.Equal(t, uint8(0x05), cpu.Registers().X)
	assert.Equal(t, res, cpu.Tic())
	assert.Equal(t, uint16(0x8002), cpu.Registers().PC)
}

func TestCPU_Reset(t *testing.T) {
	expectedPC := uint16(0x8000)
	expectedP := flagU | flagI
	expectedSP := uint8(0xfd)

	mem := NewMemory(0x10000, false)
	mem.Write8(0xfffc, uint8(expectedPC>>0)) // lsb initial PC
	mem.Write8(0xfffd, uint8(expectedPC>>8)) // msb initial PC

	cpu := NewCPU(mem)
	cpu.p = 0xff
	cpu.PowerOn()

	assert.Equal(t, expectedPC, cpu.pc)
	assert.Equal(t, expectedSP, cpu.sp)
	assert.Equal(t, expectedP, cpu.p)

	cycles := 0
	for !cpu.InstructionDone() {
		assert.Equal(t, StepIdle, cpu.Tic().Kind)
		cycles++
	}
	assert.Equal(t, 7, cycles)
	assert.Equal(t, uint64(7), cpu.TotalCycles())

	t.Run("warm reset keeps flags", func(t *testing.T) {
		cpu.p = flagU | flagC | flagV
		cpu.Reset()
		assert.Equal(t, flagU|flagC|flagV|flagI, cpu.p)
		assert.Equal(t, uint8(0xfa), cpu.sp)
		assert.Equal(t, expectedPC, cpu.pc)
	})
}

func Test_CPU_SingleStepTest(t *testing.T) {
	t.Parallel()

	type cpuState struct {
		PC uint16 `json:"pc"`
		S  uint8  `json:"s"`
		A  uint8  `json:"a"`
		X  uint8  `json:"x"`
		Y  uint8  `json:"y"`
		P  uint8  `json:"p"`

		// slice of elements where
		// element[0] is address
		// element[1] is value
		RAM [][]uint16 `json:"ram"`
	}

	type testInstance struct {
		Name    string   `json:"name"`
		Initial cpuState `json:"initial"`
		Final   cpuState `json:"final"`

		// slice of elements where
		// element[0] is address
		// element[1] is value
		// element[2] is operation (read/write)
		Cycles [][]any `json:"cycles"`
	}

	dir := os.Getenv("SINGLE_STEP_TEST_DIR")
	if dir == "" {
		t.Skip("skipping test because SINGLE_STEP_TEST_DIR is not set")
		return
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	mem := newStepMem(t)
	doTest := func(t *testing.T, test testInstance) {
		// init memory
		mem.reset()
		for _, addrVal := range test.Initial.RAM {
			mem.set(addrVal[0], uint8(addrVal[1]))
		}
		for _, cyc := range test.Cycles {
			if cyc[2].(string) != "write" {
				continue
			}
			mem.allow(uint16(cyc[0].(float64)), uint8(cyc[1].(float64)))
		}

		// init CPU
		cpu := NewCPU(mem)
		cpu.pc = test.Initial.PC
		cpu.sp = test.Initial.S
		cpu.a = test.Initial.A
		cpu.x = test.Initial.X
		cpu.y = test.Initial.Y
		cpu.p = test.Initial.P

		// run CPU
		_, cycles := runInstruction(cpu)

		// check final state of CPU
		require.Equal(t, test.Final.PC, cpu.pc, "%s: PC", test.Name)
		require.Equal(t, test.Final.S, cpu.sp, "%s: S", test.Name)
		require.Equal(t, test.Final.A, cpu.a, "%s: A", test.Name)
		require.Equal(t, test.Final.X, cpu.x, "%s: X", test.Name)
		require.Equal(t, test.Final.Y, cpu.y, "%s: Y", test.Name)
		require.Equal(t, test.Final.P, cpu.p, "%s: P", test.Name)
		require.Equal(t, len(test.Cycles), cycles, "%s: cycles", test.Name)

		// check final state of memory
		for _, addrVal := range test.Final.RAM {
			mem.mustBe(addrVal[0], uint8(addrVal[1]))
		}
	}

	var tests []testInstance
	for _, file := range files {
		opcodeStr := path.Base(file.Name())[:2]
		opcode, err := strconv.ParseUint(opcodeStr, 16, 8)
		if err != nil {
			t.Fatalf("failed to parse opcode from file name %s: %v", file.Name(), err)
		}

		fileData, err := os.ReadFile(dir + "/" + file.Name())
		if err != nil {
			t.Fatalf("failed to read file %s: %v", file.Name(), err)
		}

		tests = tests[:0]
		err = json.Unmarshal(fileData, &tests)
		if err != nil {
			t.Fatalf("failed to unmarshal file %s: %v", file.Name(), err)
		}

		t.Run(file.Name(), func(t *testing.T) {
			if !opcodeIsSupported(uint8(opcode)) {
				t.Skipf("skipping test for opcode %02X because it is not supported", opcode)
				return
			}
			for _, test := range tests {
				doTest(t, test)
			}
		})
	}
}

// stepMem is a flat 64 KB memory that fails the test on writes the
// reference cycle list does not contain.
type stepMem struct {
	t       *testing.T
	data    []uint8
	allowed map[uint32]struct{}
}

func newStepMem(t *testing.T) *stepMem {
	return &stepMem{
		t:       t,
		data:    make([]uint8, 0x10000),
		allowed: make(map[uint32]struct{}),
	}
}

func (m *stepMem) key(addr uint16, data uint8) uint32 {
	return uint32(addr) | uint32(data)<<16
}

func (m *stepMem) allow(addr uint16, data uint8) {
	m.allowed[m.key(addr, data)] = struct{}{}
}

func (m *stepMem) mustBe(addr uint16, data uint8) {
	if m.data[addr] != data {
		m.t.Fatalf("expected %02X at address %04X, got %02X", data, addr, m.data[addr])
	}
}

func (m *stepMem) set(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *stepMem) reset() {
	clear(m.data)
	clear(m.allowed)
}

func (m *stepMem) Read8(addr uint16) uint8 {
	// do not check because read does not change memory
	return m.data[addr]
}

func (m *stepMem) Write8(addr uint16, data uint8) {
	if _, ok := m.allowed[m.key(addr, data)]; !ok {
		m.t.Fatalf("not allowed write to address %04X with value %02X", addr, data)
	}
	m.data[addr] = data
}
