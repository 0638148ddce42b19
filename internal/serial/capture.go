// Package serial implements the shell-side capture of test-ROM serial
// output. SB/SC are plain RAM on the bus (no MMIO trampoline, per the
// core's data model); a Capture sink only makes sense of them by being
// polled from the outside after every step, the same way a test harness
// or blargg-style conformance runner checks for output.
package serial

import "log/slog"

// Capture buffers bytes written through the classic SB/SC serial
// transfer protocol (write SB, then SC=0x81 to kick off an internal
// clocked transfer), logging complete lines as they accumulate.
type Capture struct {
	logger *slog.Logger
	line   []byte
	Bytes  []byte
}

// NewCapture returns a capture sink that logs completed lines through
// logger. A nil logger falls back to slog.Default().
func NewCapture(logger *slog.Logger) *Capture {
	if logger == nil {
		logger = slog.Default()
	}
	return &Capture{logger: logger}
}

// Poll inspects SB/SC as read from bus and, if a transfer is pending
// (SC reads exactly 0x81: start bit 7 and internal-clock bit 0), consumes
// the byte and clears SC to 0x00, matching the protocol test ROMs use for
// text output.
func (cap *Capture) Poll(readSB func() byte, readSC func() byte, writeSC func(byte)) {
	sc := readSC()
	if sc != 0x81 {
		return
	}

	b := readSB()
	cap.Bytes = append(cap.Bytes, b)

	if b == '\n' {
		if len(cap.line) > 0 {
			cap.logger.Info("serial", "line", string(cap.line))
			cap.line = cap.line[:0]
		}
	} else {
		cap.line = append(cap.line, b)
	}

	writeSC(0x00)
}

// Flush logs any partial line left in the buffer, for use once the
// emulator stops without a trailing newline.
func (cap *Capture) Flush() {
	if len(cap.line) > 0 {
		cap.logger.Info("serial", "line", string(cap.line))
		cap.line = cap.line[:0]
	}
}

// String returns everything captured so far as text.
func (cap *Capture) String() string {
	return string(cap.Bytes)
}
