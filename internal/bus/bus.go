// Package bus implements the 16-bit address space shared by the CPU,
// timer, and interrupt controller. It owns the flat RAM backing array
// and trampolines reads/writes at a handful of addresses to peripheral
// state instead of storing them in the array.
package bus

import (
	"fmt"

	"github.com/kjhall/gbcore/internal/addr"
	"github.com/kjhall/gbcore/internal/interrupt"
	"github.com/kjhall/gbcore/internal/timer"
)

const romLimit = 0x8000

// Bus is the memory-mapped address space. It is the only mutation path
// for RAM, and the only path by address to the timer and interrupt
// controller registers.
type Bus struct {
	ram        [0x10000]byte
	timer      *timer.Timer
	interrupts *interrupt.Controller
}

// New creates a bus wired to a timer and interrupt controller. The timer
// is wired so that a TIMA overflow requests the Timer interrupt.
func New(t *timer.Timer, ic *interrupt.Controller) *Bus {
	t.OnOverflow = func() { ic.Request(addr.Timer) }
	return &Bus{timer: t, interrupts: ic}
}

// LoadROM copies data into the bottom of the address space. Only images
// that fit in the unbanked 32 KiB ROM area are supported; bank-switching
// cartridge controllers are out of scope.
func (b *Bus) LoadROM(data []byte) error {
	if len(data) > romLimit {
		return fmt.Errorf("bus: ROM image of %d bytes exceeds the %d byte unbanked ROM area", len(data), romLimit)
	}
	copy(b.ram[:], data)
	return nil
}

// Read returns the byte at addr, trampolining to the timer or interrupt
// controller where the address aliases peripheral state.
func (b *Bus) Read(address uint16) byte {
	switch address {
	case addr.DIV:
		return b.timer.DIV()
	case addr.TIMA:
		return b.timer.TIMA()
	case addr.TMA:
		return b.timer.TMA()
	case addr.TAC:
		return b.timer.TAC()
	case addr.IF:
		return b.interrupts.IF()
	case addr.IE:
		return b.interrupts.IE()
	case addr.LY:
		return 0x90
	default:
		return b.ram[address]
	}
}

// Write stores value at addr, trampolining to the timer or interrupt
// controller where the address aliases peripheral state.
func (b *Bus) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		b.timer.WriteDIV()
	case addr.TIMA:
		b.timer.WriteTIMA(value)
	case addr.TMA:
		b.timer.WriteTMA(value)
	case addr.TAC:
		b.timer.WriteTAC(value)
	case addr.IF:
		b.interrupts.SetIF(value)
	case addr.IE:
		b.interrupts.SetIE(value)
	case addr.LY:
		// Fixed stub value; writes are accepted and ignored so BIOS-style
		// polling loops that happen to write back what they read don't panic.
	default:
		b.ram[address] = value
	}
}
