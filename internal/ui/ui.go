package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/cyclenes/internal/config"
	"github.com/nevisdale/cyclenes/internal/nes"
	"golang.org/x/image/font/basicfont"
)

// Tab - show debug info
// P - pause
// R - one instruction and stop
// F - one frame and stop
// C - next palette for the pattern tables
// F5 - reset

const (
	gameScreenWidth  = 256
	gameScreenHeight = 240

	debugScreenWidth = 286
	lineHeight       = 14
	disasmContext    = 7
	patternTableSize = 128
)

var buttons = map[string]nes.Button{
	"a":      nes.ButtonA,
	"b":      nes.ButtonB,
	"select": nes.ButtonSelect,
	"start":  nes.ButtonStart,
	"up":     nes.ButtonUp,
	"down":   nes.ButtonDown,
	"left":   nes.ButtonLeft,
	"right":  nes.ButtonRight,
}

type UI struct {
	console *nes.Console
	keys    map[nes.Button]ebiten.Key
	scale   int
	tps     int

	game   *ebiten.Image
	disasm map[uint16]string

	palette   uint8
	paused    bool
	showDebug bool
	err       error
}

func New(console *nes.Console, cfg config.Config) (*UI, error) {
	keys, err := parseKeys(cfg.Keys)
	if err != nil {
		return nil, err
	}
	ui := &UI{
		console:   console,
		keys:      keys,
		scale:     cfg.Scale,
		tps:       cfg.TPS,
		game:      ebiten.NewImage(gameScreenWidth, gameScreenHeight),
		showDebug: cfg.Debug,
	}
	if cart := console.Cart(); cart != nil {
		// the cartridge has no read side effects, unlike the bus
		ui.disasm = nes.Disassemble(cart, 0x8000, 0xffff)
	}
	return ui, nil
}

func parseKeys(names map[string]string) (map[nes.Button]ebiten.Key, error) {
	keys := make(map[nes.Button]ebiten.Key, len(names))
	for name, keyName := range names {
		button, ok := buttons[name]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", name)
		}
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(keyName)); err != nil {
			return nil, fmt.Errorf("button %s: %w", name, err)
		}
		keys[button] = key
	}
	return keys, nil
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ui.showDebug = !ui.showDebug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.palette = (ui.palette + 1) & 0x7
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.paused = !ui.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		ui.console.Reset()
		ui.err = nil
	}

	pad := ui.console.Controller(0)
	for button, key := range ui.keys {
		pad.SetButton(button, ebiten.IsKeyPressed(key))
	}

	if ui.err != nil {
		return nil
	}

	switch {
	case !ui.paused:
		ui.err = ui.console.StepFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ui.err = ui.console.StepInstruction()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ui.err = ui.console.StepFrame()
	}
	if ui.err != nil {
		log.Printf("emulation stopped: %s\n", ui.err)
		ui.paused = true
	}
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	ui.game.WritePixels(ui.console.Screen().Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(ui.scale), float64(ui.scale))
	screen.DrawImage(ui.game, op)

	if ui.showDebug {
		ui.drawDebug(screen)
	}
}

func (ui *UI) drawDebug(screen *ebiten.Image) {
	info := ui.console.DebugInfo()
	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " PALETTE: %d\n", ui.palette)
	fmt.Fprintf(&infoStr, " STATUS: %s\n", info.StatusString())
	fmt.Fprintf(&infoStr, " PC: %04X  CYC: %d\n", info.PC, info.Cycles)
	fmt.Fprintf(&infoStr, " A: $%02X X: $%02X Y: $%02X SP: $%02X\n", info.A, info.X, info.Y, info.SP)
	fmt.Fprintf(&infoStr, " FRAME: %d LINE: %d DOT: %d\n", info.Frame, info.Scanline, info.Dot)
	if ui.paused {
		infoStr.WriteString(" PAUSED\n")
	}
	if ui.err != nil {
		fmt.Fprintf(&infoStr, " %s\n", ui.err)
	}
	infoStr.WriteString("\n")
	infoStr.WriteString(ui.disasmAround(info.PC))

	offsetX := float32(gameScreenWidth * ui.scale)
	height := float32(gameScreenHeight * ui.scale)
	vector.DrawFilledRect(screen, offsetX, 0, debugScreenWidth, height, color.RGBA{50, 50, 50, 255}, false)
	for i, line := range strings.Split(infoStr.String(), "\n") {
		text.Draw(screen, line, basicfont.Face7x13, int(offsetX), (i+1)*lineHeight, color.White)
	}

	ppu := ui.console.PPU()
	for i := 0; i < 8; i++ {
		paletteImg := ebiten.NewImage(4, 1)
		for j := 0; j < 4; j++ {
			paletteImg.Set(j, 0, ppu.PaletteColor(uint8(i), uint8(j)))
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(8, 8)
		op.GeoM.Translate(float64(offsetX)+10+float64(i*35), float64(height)-patternTableSize-30)
		screen.DrawImage(paletteImg, op)
	}

	for i := 0; i < 2; i++ {
		tilesImg := ebiten.NewImageFromImage(ppu.PatternTable(ui.palette, uint8(i)))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(offsetX)+10+(float64(i)*(patternTableSize+5)), float64(height)-patternTableSize-10)
		screen.DrawImage(tilesImg, op)
	}
}

// disasmAround lists the decoded instructions before and after pc. Only
// cartridge space is decoded.
func (ui *UI) disasmAround(pc uint16) string {
	if ui.disasm == nil || pc < 0x8000 {
		return ""
	}

	var before []string
	for addr := int(pc) - 1; addr >= 0x8000 && len(before) < disasmContext; addr-- {
		if line, ok := ui.disasm[uint16(addr)]; ok {
			before = append([]string{" " + line}, before...)
		}
	}

	var sb strings.Builder
	for _, line := range before {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("*" + ui.disasm[pc] + "\n")
	after := 0
	for addr := int(pc) + 1; addr <= 0xffff && after < disasmContext; addr++ {
		if line, ok := ui.disasm[uint16(addr)]; ok {
			sb.WriteString(" " + line + "\n")
			after++
		}
	}
	return sb.String()
}

func (ui *UI) Layout(_, _ int) (int, int) {
	width := gameScreenWidth * ui.scale
	if ui.showDebug {
		width += debugScreenWidth
	}
	return width, gameScreenHeight * ui.scale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(gameScreenWidth*ui.scale+debugScreenWidth, gameScreenHeight*ui.scale)
	ebiten.SetWindowTitle("cyclenes")
	ebiten.SetTPS(ui.tps)
	return ebiten.RunGame(ui)
}
