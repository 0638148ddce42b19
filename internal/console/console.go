// Package console wires the bus, timer, interrupt controller and CPU
// into the single step loop a shell drives: cpu.Step() returns machine
// cycles, the timer consumes exactly that many, and the serial capture
// sink is polled every step since SB/SC are plain bus memory rather
// than a trampolined peripheral.
package console

import (
	"log/slog"

	"github.com/kjhall/gbcore/internal/addr"
	"github.com/kjhall/gbcore/internal/bus"
	"github.com/kjhall/gbcore/internal/cpu"
	"github.com/kjhall/gbcore/internal/interrupt"
	"github.com/kjhall/gbcore/internal/serial"
	"github.com/kjhall/gbcore/internal/timer"
	"github.com/kjhall/gbcore/internal/trace"
)

// Console owns one complete core: bus, timer, interrupt controller, CPU,
// and the serial capture sink a shell polls for test-ROM text output.
type Console struct {
	Bus        *bus.Bus
	CPU        *cpu.CPU
	Timer      *timer.Timer
	Interrupts *interrupt.Controller
	Serial     *serial.Capture

	Trace  bool
	logger *slog.Logger
}

// New returns a console in its power-on state, with its serial capture
// sink logging through logger (nil selects slog.Default()).
func New(logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}

	ic := interrupt.New()
	t := timer.New()
	b := bus.New(t, ic)
	c := cpu.New(b, ic)

	return &Console{
		Bus:        b,
		CPU:        c,
		Timer:      t,
		Interrupts: ic,
		Serial:     serial.NewCapture(logger),
		logger:     logger,
	}
}

// LoadROM copies data into the bottom of the address space.
func (co *Console) LoadROM(data []byte) error {
	return co.Bus.LoadROM(data)
}

// Step executes one CPU instruction (or idle HALT cycle), ticks the
// timer by the machine cycles it took, and polls the serial sink.
// Returns the machine-cycle count, for a caller accumulating a budget.
func (co *Console) Step() int {
	mcycles := co.CPU.Step()
	co.Timer.Tick(mcycles)

	co.Serial.Poll(
		func() byte { return co.Bus.Read(addr.SB) },
		func() byte { return co.Bus.Read(addr.SC) },
		func(v byte) { co.Bus.Write(addr.SC, v) },
	)

	if co.Trace {
		snap := trace.Take(co.CPU)
		line := trace.Disassemble(co.Bus, snap.PC)
		co.logger.Debug("trace", "pc", snap.PC, "op", line.Text, "regs", snap.String(), "flags", snap.Flags())
	}

	return mcycles
}

// RunCycles steps the console until at least maxMCycles machine cycles
// have elapsed, returning the actual total (never less than requested,
// since a single Step is never subdivided).
func (co *Console) RunCycles(maxMCycles uint64) uint64 {
	var ran uint64
	for ran < maxMCycles {
		ran += uint64(co.Step())
	}
	return ran
}

// Stopped reports whether the CPU has executed STOP, a halt condition
// this core does not attempt to wake from (no joypad input exists).
func (co *Console) Stopped() bool {
	return co.CPU.IsStopped()
}
