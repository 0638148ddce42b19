package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjhall/gbcore/internal/interrupt"
)

type fakeBus struct {
	mem [0x10000]byte
}

func (f *fakeBus) Read(address uint16) byte     { return f.mem[address] }
func (f *fakeBus) Write(address uint16, v byte) { f.mem[address] = v }

func newTestCPU() (*CPU, *fakeBus, *interrupt.Controller) {
	b := &fakeBus{}
	ic := interrupt.New()
	return New(b, ic), b, ic
}

func TestRegisterPairs(t *testing.T) {
	c, _, _ := newTestCPU()

	c.setBC(0xABCD)
	assert.Equal(t, uint8(0xAB), c.b)
	assert.Equal(t, uint8(0xCD), c.c)
	assert.Equal(t, uint16(0xABCD), c.getBC())

	c.setDE(0x1234)
	assert.Equal(t, uint16(0x1234), c.getDE())

	c.setHL(0xFFFF)
	assert.Equal(t, uint16(0xFFFF), c.getHL())
}

func TestSetAFMasksLowNibbleOfF(t *testing.T) {
	c, _, _ := newTestCPU()

	c.setAF(0x12FF)

	assert.Equal(t, uint8(0x12), c.a)
	assert.Equal(t, uint8(0xF0), c.f, "the low nibble of F has no real flags and must read back zero")
}

func TestSetBCDoesNotMisuseOperatorPrecedence(t *testing.T) {
	// uint8(v & 0xFF00 >> 8) is a classic bug in C and Rust: there >> binds
	// tighter than &, so that expression is uint8(v & (0xFF00 >> 8)) =
	// uint8(v & 0xFF), which yields the LOW byte instead of the high byte.
	c, _, _ := newTestCPU()
	c.setBC(0xAB00)
	assert.Equal(t, uint8(0xAB), c.b)
}

func TestFlagHelpers(t *testing.T) {
	c, _, _ := newTestCPU()

	c.setFlag(flagZ)
	assert.True(t, c.isSetFlag(flagZ))
	assert.Equal(t, uint8(1), c.flagToBit(flagZ))

	c.resetFlag(flagZ)
	assert.False(t, c.isSetFlag(flagZ))
	assert.Equal(t, uint8(0), c.flagToBit(flagZ))

	c.setFlagToCondition(flagC, true)
	assert.True(t, c.isSetFlag(flagC))
}

func TestReadImmediateAdvancesPC(t *testing.T) {
	c, b, _ := newTestCPU()
	b.mem[0x100] = 0x42
	c.pc = 0x100

	got := c.readImmediate()

	assert.Equal(t, uint8(0x42), got)
	assert.Equal(t, uint16(0x101), c.pc)
}

func TestReadImmediateWordIsLittleEndian(t *testing.T) {
	c, b, _ := newTestCPU()
	b.mem[0x100] = 0xCD
	b.mem[0x101] = 0xAB
	c.pc = 0x100

	got := c.readImmediateWord()

	assert.Equal(t, uint16(0xABCD), got)
	assert.Equal(t, uint16(0x102), c.pc)
}

func TestPushPopStackRoundTrips(t *testing.T) {
	c, _, _ := newTestCPU()
	c.sp = 0xFFFE

	c.pushStack(0x1234)
	assert.Equal(t, uint16(0xFFFC), c.sp)

	got := c.popStack()
	assert.Equal(t, uint16(0x1234), got)
	assert.Equal(t, uint16(0xFFFE), c.sp)
}
