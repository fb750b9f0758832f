package nes

const (
	dotsPerLine    = 341
	linesPerFrame  = 262
	lastDot        = dotsPerLine - 1
	visibleLines   = 240
	vblankLine     = 241
	preRenderLine  = 261
	screenWidth    = 256
	screenHeight   = 240
	oamSizeBytes   = 0x100
	secondaryOAMSz = 0x20
	maxLineSprites = 8
)

// PPUCTRL bits
const (
	ctrlNametable   = 0x03
	ctrlIncrement32 = 0x04
	ctrlSpriteTable = 0x08
	ctrlBgTable     = 0x10
	ctrlSpriteSize  = 0x20
	ctrlNMI         = 0x80
)

// PPUMASK bits
const (
	maskGreyscale  = 0x01
	maskBgLeft     = 0x02
	maskSpriteLeft = 0x04
	maskBg         = 0x08
	maskSprites    = 0x10
)

// PPUSTATUS bits
const (
	statusOverflow = 0x20
	statusSprite0  = 0x40
	statusVBlank   = 0x80
)

// PixelSink receives every pixel the PPU outputs. color is an index into
// the 64 entry master palette.
type PixelSink interface {
	CommitPixel(x, y int, color uint8)
}

type PPU struct {
	chr       ReadWriter // pattern tables on the cartridge
	mirroring Mirroring
	vram      *Memory // 2 KB of nametables
	palette   *Memory
	sink      PixelSink

	scanline int
	dot      int
	frame    uint64
	oddFrame bool

	ctrl    uint8
	mask    uint8
	status  uint8
	oamAddr uint8

	v          uint16 // current VRAM address, 15 bits
	t          uint16 // temporary VRAM address, 15 bits
	x          uint8  // fine X scroll, 3 bits
	w          bool   // first/second write toggle
	readBuffer uint8  // PPUDATA read delay
	ioLatch    uint8  // value left on the register data lines

	bg bgPipeline

	oam          [oamSizeBytes]uint8
	secondaryOAM [secondaryOAMSz]uint8
	eval         spriteEval
	sprites      [maxLineSprites]spriteUnit
	spriteCount  int
	// sprite 0 sits in unit 0 for the next line / the current line
	spriteZeroNext bool
	spriteZeroLine bool
}

func NewPPU() *PPU {
	return &PPU{
		vram:    NewMemory(0x800, true),
		palette: NewMemory(0x20, true),
	}
}

// AttachCart connects the pattern tables and nametable wiring of a
// cartridge. The PPU does not own chr.
func (p *PPU) AttachCart(chr ReadWriter, mirroring Mirroring) {
	p.chr = chr
	p.mirroring = mirroring
}

func (p *PPU) AttachSink(sink PixelSink) {
	p.sink = sink
}

// Reset restores the state after the reset line: registers cleared, raster
// at the top of the frame. OAM, VRAM and palette keep their content.
func (p *PPU) Reset() {
	p.scanline = 0
	p.dot = 0
	p.frame = 0
	p.oddFrame = false
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.w = false
	p.t = 0
	p.x = 0
	p.readBuffer = 0
	p.spriteCount = 0
	p.spriteZeroNext = false
	p.spriteZeroLine = false
}

func (p *PPU) Scanline() int {
	return p.scanline
}

func (p *PPU) Dot() int {
	return p.dot
}

func (p *PPU) Frame() uint64 {
	return p.frame
}

func (p *PPU) OAM() []uint8 {
	return p.oam[:]
}

// NMILine is the level of the PPU's /NMI output, inverted: true while
// VBlank is flagged and PPUCTRL enables NMI.
func (p *PPU) NMILine() bool {
	return p.status&statusVBlank != 0 && p.ctrl&ctrlNMI != 0
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskBg|maskSprites) != 0
}

func (p *PPU) isVisibleLine() bool {
	return p.scanline < visibleLines
}

func (p *PPU) isPreRenderLine() bool {
	return p.scanline == preRenderLine
}

func (p *PPU) isRenderLine() bool {
	return p.isVisibleLine() || p.isPreRenderLine()
}

// Tic moves the raster one dot and performs the work of the new position.
func (p *PPU) Tic() {
	p.advance()

	if p.isRenderLine() && p.renderingEnabled() {
		p.backgroundDot()
		p.spriteDot()
	}
	if p.isVisibleLine() && p.dot >= 1 && p.dot <= screenWidth {
		p.renderPixel()
	}

	switch {
	case p.scanline == vblankLine && p.dot == 1:
		p.status |= statusVBlank
	case p.isPreRenderLine() && p.dot == 1:
		p.status &^= statusVBlank | statusSprite0 | statusOverflow
		p.spriteZeroNext = false
	}
}

// advance steps the position. On odd frames with rendering enabled the
// last dot of the pre-render line is skipped.
func (p *PPU) advance() {
	if p.isPreRenderLine() && p.dot == lastDot-1 && p.oddFrame && p.renderingEnabled() {
		p.startFrame()
		return
	}

	p.dot++
	if p.dot > lastDot {
		p.dot = 0
		p.scanline++
		if p.scanline >= linesPerFrame {
			p.startFrame()
		}
	}
}

func (p *PPU) startFrame() {
	p.dot = 0
	p.scanline = 0
	p.frame++
	p.oddFrame = !p.oddFrame
}

func (p *PPU) renderPixel() {
	x := p.dot - 1

	bgPixel, bgPalette := p.backgroundPixel(x)
	spPixel, spPalette, spBehind, spZero := p.spritePixel(x)
	if p.renderingEnabled() {
		p.shiftSprites()
	}

	var addr uint8
	switch {
	case bgPixel == 0 && spPixel == 0:
		addr = 0
	case bgPixel == 0:
		addr = 0x10 | spPalette<<2 | spPixel
	case spPixel == 0:
		addr = bgPalette<<2 | bgPixel
	default:
		if spZero && x != screenWidth-1 {
			p.status |= statusSprite0
		}
		if spBehind {
			addr = bgPalette<<2 | bgPixel
		} else {
			addr = 0x10 | spPalette<<2 | spPixel
		}
	}

	color := p.readPalette(uint16(addr)) & 0x3f
	if p.mask&maskGreyscale != 0 {
		color &= 0x30
	}
	if p.sink != nil {
		p.sink.CommitPixel(x, p.scanline, color)
	}
}
