// Package cpu implements the LR35902-class instruction interpreter:
// registers, flags, the full unprefixed and CB-prefixed opcode pages,
// and interrupt servicing between instructions.
package cpu

import (
	"github.com/kjhall/gbcore/internal/bit"
	"github.com/kjhall/gbcore/internal/interrupt"
)

// Flag is one of the four flags held in the high nibble of F; the low
// nibble of F is always zero.
type Flag uint8

const (
	flagZ Flag = 1 << 7
	flagN Flag = 1 << 6
	flagH Flag = 1 << 5
	flagC Flag = 1 << 4
)

// Bus is the subset of bus.Bus the CPU needs. Declared here (rather than
// imported from package bus) so cpu can be unit tested against a fake.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// CPU holds the full register file plus the bookkeeping flags that
// HALT/STOP/EI/interrupt-dispatch need across Step calls.
type CPU struct {
	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	bus         Bus
	interrupts  *interrupt.Controller
	currentOpcode uint16

	halted    bool
	haltBug   bool
	stopped   bool
	eiPending bool
}

// New returns a CPU wired to bus and interrupts, in its power-on state:
// all registers zero, not halted or stopped, no EI delay pending.
func New(bus Bus, interrupts *interrupt.Controller) *CPU {
	return &CPU{bus: bus, interrupts: interrupts}
}

// PC returns the program counter, for debugger/test-harness use.
func (c *CPU) PC() uint16 { return c.pc }

// SetPC sets the program counter, for debugger/test-harness use.
func (c *CPU) SetPC(v uint16) { c.pc = v }

// SP returns the stack pointer, for debugger/test-harness use.
func (c *CPU) SP() uint16 { return c.sp }

// SetSP sets the stack pointer, for debugger/test-harness use.
func (c *CPU) SetSP(v uint16) { c.sp = v }

// A, B, C, D, E, F, H, L expose the 8-bit registers for debugger/test use.
func (c *CPU) A() uint8 { return c.a }
func (c *CPU) B() uint8 { return c.b }
func (c *CPU) C() uint8 { return c.c }
func (c *CPU) D() uint8 { return c.d }
func (c *CPU) E() uint8 { return c.e }
func (c *CPU) F() uint8 { return c.f }
func (c *CPU) H() uint8 { return c.h }
func (c *CPU) L() uint8 { return c.l }

// SetA, SetB, ... replace the 8-bit registers, for debugger/test use.
func (c *CPU) SetA(v uint8) { c.a = v }
func (c *CPU) SetB(v uint8) { c.b = v }
func (c *CPU) SetC(v uint8) { c.c = v }
func (c *CPU) SetD(v uint8) { c.d = v }
func (c *CPU) SetE(v uint8) { c.e = v }
func (c *CPU) SetF(v uint8) { c.f = v & 0xF0 }
func (c *CPU) SetH(v uint8) { c.h = v }
func (c *CPU) SetL(v uint8) { c.l = v }

// IsHalted reports whether the CPU is waiting in HALT.
func (c *CPU) IsHalted() bool { return c.halted }

// IsStopped reports whether the CPU has executed STOP.
func (c *CPU) IsStopped() bool { return c.stopped }

// getAF/setAF, getBC/setBC, getDE/setDE, getHL/setHL compose the
// individually-addressable 8-bit registers into their big-endian pair
// view (high byte first). setAF always masks the low nibble of F to
// zero, per the hardware invariant that F only has four real bits.
//
// The high byte of a pair is computed as uint8(v >> 8), not
// uint8(v&0xFF00>>8): in C and Rust >> binds tighter than &, so that
// expression yields the low byte there. Go gives & and >> equal
// precedence, but the plain shift avoids the ambiguity altogether.
func (c *CPU) getAF() uint16 { return bit.Combine(c.a, c.f) }
func (c *CPU) setAF(v uint16) {
	c.a = uint8(v >> 8)
	c.f = uint8(v) & 0xF0
}

func (c *CPU) getBC() uint16 { return bit.Combine(c.b, c.c) }
func (c *CPU) setBC(v uint16) {
	c.b = uint8(v >> 8)
	c.c = uint8(v)
}

func (c *CPU) getDE() uint16 { return bit.Combine(c.d, c.e) }
func (c *CPU) setDE(v uint16) {
	c.d = uint8(v >> 8)
	c.e = uint8(v)
}

func (c *CPU) getHL() uint16 { return bit.Combine(c.h, c.l) }
func (c *CPU) setHL(v uint16) {
	c.h = uint8(v >> 8)
	c.l = uint8(v)
}

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

func (c *CPU) readImmediate() uint8 {
	value := c.bus.Read(c.pc)
	c.pc++
	return value
}

func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return bit.Combine(high, low)
}

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.bus.Write(c.sp, bit.High(value))
	c.sp--
	c.bus.Write(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.sp)
	c.sp++
	high := c.bus.Read(c.sp)
	c.sp++
	return bit.Combine(high, low)
}
