// Package cpu implements the MOS 6502 microprocessor as used in the
// NES (no decimal-mode arithmetic), over a caller-supplied bus.
package cpu

import (
	"fmt"

	"github.com/git-gud-casual/nes-emu/flags"
	"github.com/git-gud-casual/nes-emu/mask"
)

// Bus is the capability the CPU needs from its memory system. It is
// satisfied by *bus.Bus; the CPU depends on this narrow interface so
// tests can wire up a trivial fake without constructing a whole bus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

const (
	resetVector = 0xFFFC
	irqVector   = 0xFFFE

	resetSP = 0xFD
	stackHi = 0x0100
)

// UnknownOpcode is returned by Step when the fetched byte has no entry
// in the opcode table. It is fatal: the CPU does not guess at a
// NOP/XXX fallback, per spec.
type UnknownOpcode struct {
	PC     uint16
	Opcode byte
}

func (e UnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}

// Registers is an observer snapshot of the CPU's programmer-visible
// state, returned by CPU.Regs for tests and tracing.
type Registers struct {
	A, X, Y, SP byte
	PC          uint16
	P           byte
	Cycles      uint64
}

// CPU is a single MOS 6502 core. It owns no memory of its own; every
// read and write is routed through Bus.
type CPU struct {
	Bus Bus

	A, X, Y, SP byte
	PC          uint16
	P           flags.StatusRegister
	cycles      uint64

	// Addressing-mode scratch state, valid only during the execution
	// of the instruction currently being stepped.
	addr        uint16
	accumulator bool
	pageCrossed bool
	extraCycles uint64

	// Trace bookkeeping for the instruction just executed.
	lastPC      uint16
	lastOpcode  byte
	lastOperand []byte
	lastEntry   *opcode
}

// New constructs a CPU wired to b. Callers must call Reset (or SetPC)
// before stepping.
func New(b Bus) *CPU {
	return &CPU{Bus: b}
}

// Reset reloads PC from the reset vector, sets SP to $FD, P to $24,
// clears A/X/Y, and resets the cycle counter to 0.
func (c *CPU) Reset() {
	lo := c.Bus.Read(resetVector)
	hi := c.Bus.Read(resetVector + 1)
	c.PC = mask.Word(hi, lo)
	c.SP = resetSP
	c.P = flags.NewStatusRegister()
	c.A, c.X, c.Y = 0, 0, 0
	c.cycles = 0
}

// Step executes exactly one instruction, advancing the cycle counter
// by its base cost plus any branch or page-cross penalty. It returns
// UnknownOpcode if the fetched byte is not in the opcode table.
func (c *CPU) Step() error {
	pc := c.PC
	op := c.Bus.Read(c.PC)
	c.PC++

	entry := opcodeTable[op]
	if entry == nil {
		return UnknownOpcode{PC: pc, Opcode: op}
	}

	operand := make([]byte, operandBytes(entry.mode))
	for i := range operand {
		operand[i] = c.Bus.Read(c.PC + uint16(i))
	}

	c.pageCrossed = false
	c.extraCycles = 0
	c.decodeAddress(entry.mode)
	entry.exec(c)

	c.cycles += uint64(entry.cycles)
	if c.pageCrossed && entry.pageCrossPenalty {
		c.cycles++
	}
	c.cycles += c.extraCycles

	c.lastPC = pc
	c.lastOpcode = op
	c.lastOperand = operand
	c.lastEntry = entry

	return nil
}

// Cycles returns the cumulative cycle counter.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// PCValue returns the current program counter.
func (c *CPU) PCValue() uint16 {
	return c.PC
}

// SetPC overrides the program counter directly, bypassing Reset. Tests
// use this to pin PC at $C000 to enter nestest's automation entry
// point without running the reset sequence.
func (c *CPU) SetPC(addr uint16) {
	c.PC = addr
}

// Regs returns a snapshot of the CPU's programmer-visible state.
func (c *CPU) Regs() Registers {
	return Registers{
		A:      c.A,
		X:      c.X,
		Y:      c.Y,
		SP:     c.SP,
		PC:     c.PC,
		P:      c.P.Byte(),
		Cycles: c.cycles,
	}
}

// push writes v to the stack and decrements SP, wrapping within $00-$FF.
func (c *CPU) push(v byte) {
	c.Bus.Write(stackHi|uint16(c.SP), v)
	c.SP--
}

// pull increments SP and reads the stack, wrapping within $00-$FF.
func (c *CPU) pull() byte {
	c.SP++
	return c.Bus.Read(stackHi | uint16(c.SP))
}

// pushWord pushes v high byte first, so pullWord, which pulls the low
// byte first and then the high byte, reassembles the same value.
func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return mask.Word(hi, lo)
}
