package nes

const ramSizeBytes = 0x800

// RAM is the console's 2 KB work RAM. Addresses wrap every 0x800.
type RAM struct {
	mem *Memory
}

func NewRAM() *RAM {
	return &RAM{mem: NewMemory(ramSizeBytes, true)}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.mem.Read8(addr)
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.mem.Write8(addr, data)
}
