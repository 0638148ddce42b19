package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepTicksTimerByExactlyTheCPUsMachineCycles(t *testing.T) {
	co := New(nil)
	rom := []byte{0x00} // NOP, 1 m-cycle
	assert.NoError(t, co.LoadROM(rom))
	co.Timer.WriteTAC(0x05) // enable, bit 3, so a few m-cycles of NOPs are observable

	mcycles := co.Step()

	assert.Equal(t, 1, mcycles)
	assert.Equal(t, uint8(0), co.Timer.TIMA(), "a single NOP is nowhere near one full divider period")
}

func TestRunCyclesExecutesUntilBudgetSatisfied(t *testing.T) {
	co := New(nil)
	rom := []byte{0x00, 0x00, 0x00, 0x18, 0xFE} // NOP, NOP, NOP, then JR -2 (infinite loop)
	assert.NoError(t, co.LoadROM(rom))

	ran := co.RunCycles(10)

	assert.GreaterOrEqual(t, ran, uint64(10))
}

func TestSerialWriteIsCapturedByTheShell(t *testing.T) {
	co := New(nil)
	rom := []byte{
		0x3E, 0x48, // LD A,'H'
		0xEA, 0x01, 0xFF, // LD (0xFF01),A  (SB)
		0x3E, 0x81, // LD A,0x81
		0xEA, 0x02, 0xFF, // LD (0xFF02),A  (SC, kicks off the transfer)
		0x18, 0xFE, // JR -2, infinite loop
	}
	assert.NoError(t, co.LoadROM(rom))

	co.RunCycles(20)

	assert.Equal(t, "H", co.Serial.String())
}

func TestTraceModeDoesNotPanic(t *testing.T) {
	co := New(nil)
	co.Trace = true
	rom := []byte{0x00, 0x3C, 0xC3, 0x00, 0x00} // NOP, INC A, JP 0x0000
	assert.NoError(t, co.LoadROM(rom))

	co.RunCycles(12)
}
