// Package ppu provides a minimal stand-in for the NES picture unit's
// register ports. It implements no internal state machine (no
// scanline/dot timing, no rendering, no VRAM) — it exists only so the
// bus has a real {read8,write8} target for $2000-$3FFF, per this
// core's scope (the PPU's behavior is a collaborator's concern).
package ppu

import "github.com/git-gud-casual/nes-emu/flags"

// registerCount is the number of distinct PPU register ports; $2008 and
// above mirror $2000-$2007 modulo registerCount, which is the bus's job
// to compute before calling into the stub.
const registerCount = 8

const (
	regControl = 0
	regMask    = 1
)

// Stub is a placeholder PPU exposing the 8 documented register ports.
// Reads return 0 and writes are discarded, except that the control and
// mask register writes are latched and exposed through Control and Mask;
// nothing reads them back to affect emulated behavior, and the CPU
// debugger does not display them.
type Stub struct {
	control flags.Register
	mask    flags.Register
}

// New returns a Stub with both latches cleared.
func New() *Stub {
	return &Stub{}
}

// ReadRegister reads PPU register i (0-7). All registers read as 0: a
// real PPU has write-only and toggle-latched registers whose read
// semantics are out of scope for this core.
func (s *Stub) ReadRegister(i byte) byte {
	return 0
}

// WriteRegister writes v to PPU register i (0-7).
func (s *Stub) WriteRegister(i byte, v byte) {
	switch int(i) % registerCount {
	case regControl:
		s.control.Load(v)
	case regMask:
		s.mask.Load(v)
	}
}

// Control returns the last byte written to the control register
// ($2000). It has no effect on emulated behavior.
func (s *Stub) Control() byte { return s.control.Byte() }

// Mask returns the last byte written to the mask register ($2001). It
// has no effect on emulated behavior.
func (s *Stub) Mask() byte { return s.mask.Byte() }
