package nes

const oamDataAddr = 0x2004

// DMA copies a 256 byte page of CPU memory into OAM through $2004. It
// reads on get cycles and writes on put cycles, so one byte costs two
// cycles and a transfer started on a put cycle idles once first.
type DMA struct {
	bus ReadWriter

	addr    uint16 // next source address
	end     uint16 // exclusive
	data    uint8
	reading bool
	active  bool
	cycles  int // cycles spent in the current transfer
}

func NewDMA(bus ReadWriter) *DMA {
	return &DMA{bus: bus}
}

// ConnectBus replaces the bus the unit copies through.
func (d *DMA) ConnectBus(bus ReadWriter) {
	d.bus = bus
}

// Start begins a transfer from page<<8. A transfer in progress restarts.
func (d *DMA) Start(page uint8) {
	d.addr = uint16(page) << 8
	d.end = d.addr + 0x100
	d.reading = true
	d.active = true
	d.cycles = 0
}

func (d *DMA) Active() bool {
	return d.active
}

// Cycles returns the cycles spent by the current or last transfer.
func (d *DMA) Cycles() int {
	return d.cycles
}

// Tic runs one CPU cycle of the transfer. get tells the phase of the cycle.
func (d *DMA) Tic(get bool) {
	if !d.active {
		return
	}
	d.cycles++

	if d.reading {
		if !get {
			return
		}
		d.data = d.bus.Read8(d.addr)
		d.reading = false
		return
	}

	if get {
		return
	}
	d.bus.Write8(oamDataAddr, d.data)
	d.addr++
	d.reading = true
	if d.addr == d.end {
		d.active = false
	}
}
