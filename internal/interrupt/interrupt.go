// Package interrupt implements the IME/IE/IF interrupt controller shared
// by the CPU and the peripherals (currently only the timer) that can
// request an interrupt.
package interrupt

import "github.com/kjhall/gbcore/internal/addr"

// priority lists the five interrupt bits from highest to lowest priority,
// paired with the ISR vector the CPU should jump to.
var priority = []struct {
	bit    addr.Interrupt
	vector uint16
}{
	{addr.VBlank, addr.ISRVBlank},
	{addr.LCDSTAT, addr.ISRLCDSTAT},
	{addr.Timer, addr.ISRTimer},
	{addr.Serial, addr.ISRSerial},
	{addr.Joypad, addr.ISRJoypad},
}

// Controller holds the interrupt master enable flag plus the IE and IF
// registers, and selects the highest-priority pending interrupt on Poll.
type Controller struct {
	ime bool
	ie  uint8
	iff uint8
}

// New returns a controller in its power-on state: IME false, IE/IF zero.
func New() *Controller {
	return &Controller{}
}

// IME reports whether the interrupt master enable flag is set.
func (c *Controller) IME() bool {
	return c.ime
}

// SetIME sets or clears the interrupt master enable flag.
func (c *Controller) SetIME(enabled bool) {
	c.ime = enabled
}

// IE returns the Interrupt Enable register.
func (c *Controller) IE() uint8 {
	return c.ie
}

// SetIE replaces the Interrupt Enable register.
func (c *Controller) SetIE(value uint8) {
	c.ie = value
}

// IF returns the Interrupt Flag register.
func (c *Controller) IF() uint8 {
	return c.iff
}

// SetIF replaces the Interrupt Flag register.
func (c *Controller) SetIF(value uint8) {
	c.iff = value
}

// Pending reports whether any enabled interrupt is currently flagged,
// independent of IME. HALT wakes up on this condition.
func (c *Controller) Pending() bool {
	return c.iff&c.ie != 0
}

// Request sets the IF bit for the given interrupt source. Peripherals
// (the timer) and the bus (joypad, serial, in a fuller build) call this.
func (c *Controller) Request(source addr.Interrupt) {
	c.iff |= uint8(source)
}

// Poll returns the ISR vector of the highest-priority pending, enabled
// interrupt iff IME is set and at least one bit of IF&IE is set. On a
// hit it clears exactly that IF bit and clears IME; it has no effect at
// all otherwise.
func (c *Controller) Poll() (vector uint16, ok bool) {
	if !c.ime {
		return 0, false
	}

	pending := c.iff & c.ie
	if pending == 0 {
		return 0, false
	}

	for _, p := range priority {
		if pending&uint8(p.bit) != 0 {
			c.iff &^= uint8(p.bit)
			c.ime = false
			return p.vector, true
		}
	}

	return 0, false
}
