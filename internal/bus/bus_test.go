package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjhall/gbcore/internal/addr"
	"github.com/kjhall/gbcore/internal/interrupt"
	"github.com/kjhall/gbcore/internal/timer"
)

func newTestBus() *Bus {
	return New(timer.New(), interrupt.New())
}

func TestPlainRAMReadWrite(t *testing.T) {
	b := newTestBus()

	b.Write(0xC000, 0x42)

	assert.Equal(t, byte(0x42), b.Read(0xC000))
}

func TestSerialRegistersAreRAMNotTrampolined(t *testing.T) {
	b := newTestBus()

	b.Write(addr.SB, 0x41)
	b.Write(addr.SC, 0x81)

	assert.Equal(t, byte(0x41), b.Read(addr.SB))
	assert.Equal(t, byte(0x81), b.Read(addr.SC))
}

func TestLYIsAFixedStub(t *testing.T) {
	b := newTestBus()

	assert.Equal(t, byte(0x90), b.Read(addr.LY))

	b.Write(addr.LY, 0x00) // accepted, but has no effect
	assert.Equal(t, byte(0x90), b.Read(addr.LY))
}

func TestTimerRegistersTrampoline(t *testing.T) {
	b := newTestBus()

	b.Write(addr.TMA, 0x55)
	assert.Equal(t, byte(0x55), b.Read(addr.TMA))

	b.Write(addr.TAC, 0x07)
	assert.Equal(t, byte(0x07), b.Read(addr.TAC))

	b.Write(addr.DIV, 0xFF) // any value resets DIV to zero
	assert.Equal(t, byte(0x00), b.Read(addr.DIV))
}

func TestInterruptRegistersTrampoline(t *testing.T) {
	b := newTestBus()

	b.Write(addr.IE, 0x1F)
	assert.Equal(t, byte(0x1F), b.Read(addr.IE))

	b.Write(addr.IF, 0x05)
	assert.Equal(t, byte(0x05), b.Read(addr.IF))
}

func TestTimerOverflowRequestsTimerInterrupt(t *testing.T) {
	tm := timer.New()
	ic := interrupt.New()
	New(tm, ic)

	tm.WriteTMA(0x00)
	tm.WriteTAC(0x05)
	tm.WriteTIMA(0xFF)
	tm.Tick(4) // falling edge: wraps to 0, arms the 4 T-cycle delay
	tm.Tick(1) // delay elapses, reload fires

	assert.Equal(t, uint8(addr.Timer), ic.IF())
}

func TestLoadROMRejectsOversizedImages(t *testing.T) {
	b := newTestBus()

	err := b.LoadROM(make([]byte, 0x8001))

	assert.Error(t, err)
}

func TestLoadROMCopiesIntoLowAddressSpace(t *testing.T) {
	b := newTestBus()
	data := []byte{0x00, 0xC3, 0x50, 0x01}

	err := b.LoadROM(data)

	assert.NoError(t, err)
	assert.Equal(t, byte(0xC3), b.Read(0x0001))
}
