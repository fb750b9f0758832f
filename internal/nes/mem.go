package nes

// ReadWriter is anything addressable on a 16-bit bus.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Memory is a linear byte array. A mirrored memory folds every address
// into its range, otherwise reads past the end return 0 and writes are
// dropped.
type Memory struct {
	data     []uint8
	mirrored bool
	readOnly bool
}

func NewMemory(size int, mirrored bool) *Memory {
	return &Memory{
		data:     make([]uint8, size),
		mirrored: mirrored,
	}
}

// NewROM wraps data without copying it. Writes are ignored.
func NewROM(data []uint8) *Memory {
	return &Memory{
		data:     data,
		mirrored: true,
		readOnly: true,
	}
}

func (m *Memory) Len() int {
	return len(m.data)
}

func (m *Memory) index(addr uint16) (int, bool) {
	if len(m.data) == 0 {
		return 0, false
	}
	i := int(addr)
	if m.mirrored {
		return i % len(m.data), true
	}
	return i, i < len(m.data)
}

func (m *Memory) Read8(addr uint16) uint8 {
	i, ok := m.index(addr)
	if !ok {
		return 0
	}
	return m.data[i]
}

func (m *Memory) Write8(addr uint16, data uint8) {
	if m.readOnly {
		return
	}
	i, ok := m.index(addr)
	if !ok {
		return
	}
	m.data[i] = data
}
