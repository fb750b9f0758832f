package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDMA(t *testing.T, dma *DMA, get bool) int {
	t.Helper()
	cycles := 0
	for dma.Active() {
		require.Less(t, cycles, 1000, "transfer never finished")
		dma.Tic(get)
		get = !get
		cycles++
	}
	return cycles
}

func Test_DMA_CopiesPageToOAM(t *testing.T) {
	ppu := NewPPU()
	bus := NewDataBus(NewRAM(), ppu)
	for i := 0; i < 0x100; i++ {
		bus.Write8(0x0200+uint16(i), uint8(i)^0xa5)
	}

	dma := NewDMA(bus)
	bus.AttachDMA(dma)
	bus.Write8(oamDMAAddr, 0x02)
	require.True(t, dma.Active())

	assert.Equal(t, 512, runDMA(t, dma, true))
	assert.Equal(t, 512, dma.Cycles())
	for i := 0; i < 0x100; i++ {
		assert.Equal(t, uint8(i)^0xa5, ppu.OAM()[i], "OAM byte %d", i)
	}
}

func Test_DMA_AlternatesGetAndPut(t *testing.T) {
	ram := NewRAM()
	ram.Write8(0x0300, 0x11)
	ram.Write8(0x0301, 0x22)
	rec := NewRecordingBus(ram)

	dma := NewDMA(rec)
	dma.Start(0x03)

	dma.Tic(false)
	assert.Empty(t, rec.Actions(), "a read waits for a get cycle")
	for i, get := range []bool{true, false, true, false} {
		dma.Tic(get)
		assert.Len(t, rec.Actions(), i+1)
	}

	assert.Equal(t, []BusAction{
		{Op: BusRead, Addr: 0x0300, Data: 0x11},
		{Op: BusWrite, Addr: oamDataAddr, Data: 0x11},
		{Op: BusRead, Addr: 0x0301, Data: 0x22},
		{Op: BusWrite, Addr: oamDataAddr, Data: 0x22},
	}, rec.Actions())

	assert.Equal(t, 508, runDMA(t, dma, true))
	assert.Equal(t, 513, dma.Cycles(), "one alignment cycle")
}

func Test_DMA_LastPage(t *testing.T) {
	rec := NewRecordingBus(NewMemory(0x10000, false))
	dma := NewDMA(rec)
	dma.Start(0xff)

	assert.Equal(t, 512, runDMA(t, dma, true))
	actions := rec.Actions()
	assert.Equal(t, uint16(0xffff), actions[len(actions)-2].Addr)
	assert.False(t, dma.Active())

	// nothing happens once done
	dma.Tic(true)
	assert.Len(t, rec.Actions(), 512)
}
