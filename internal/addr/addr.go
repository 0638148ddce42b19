// Package addr names the memory-mapped I/O addresses and interrupt bits
// that the CPU core, bus, and timer need to agree on.
package addr

// interrupts
const (
	// IF is the Interrupt Flag register.
	IF uint16 = 0xFF0F
	// IE is the Interrupt Enable register.
	IE uint16 = 0xFFFF
)

// serial I/O (test-ROM output stub only, see internal/serial)
const (
	// SB holds the byte written out during a serial transfer.
	SB uint16 = 0xFF01
	// SC is the serial transfer control register; bit 7 marks a transfer start.
	SC uint16 = 0xFF02
)

// timer registers
const (
	// DIV is the divider register. Its high byte is the visible 8-bit value;
	// any write resets the internal 16-bit counter to zero.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter. An overflow (0xFF -> 0x00) requests the
	// Timer interrupt after a 4 T-cycle delay.
	TIMA uint16 = 0xFF05
	// TMA is the value TIMA reloads to on overflow.
	TMA uint16 = 0xFF06
	// TAC selects the timer clock and enables/disables TIMA counting.
	TAC uint16 = 0xFF07
)

// LY is stubbed as a fixed value (0x90) to satisfy ROMs that busy-poll it
// waiting for vblank, since the PPU itself is out of scope for this core.
const LY uint16 = 0xFF44

// Interrupt identifies one of the five interrupt sources, by IF/IE bit.
type Interrupt uint8

const (
	VBlank Interrupt = 1 << 0
	LCDSTAT Interrupt = 1 << 1
	Timer   Interrupt = 1 << 2
	Serial  Interrupt = 1 << 3
	Joypad  Interrupt = 1 << 4
)

// ISR vectors, indexed by interrupt priority (V-Blank highest).
const (
	ISRVBlank  uint16 = 0x0040
	ISRLCDSTAT uint16 = 0x0048
	ISRTimer   uint16 = 0x0050
	ISRSerial  uint16 = 0x0058
	ISRJoypad  uint16 = 0x0060
)
