package cpu

import (
	"fmt"
	"strings"
)

// Trace renders the instruction executed by the most recent Step call
// in a layout modelled on nestest's trace log. After Reset, SetPC($C000)
// and one Step over nestest's first instruction it returns:
//
//	C000  4C F5 C5  JMP $C5F5                        A:00 X:00 Y:00 P:24 SP:FD CYC:3
//
// Unlike nestest.log, the register and cycle columns show the state
// after the instruction has executed, there is no PPU column, and the
// cycle count is this CPU's own counter (0 after Reset), so the lines do
// not match nestest.log byte for byte.
//
// It returns the empty string if Step has not yet been called.
func (c *CPU) Trace() string {
	if c.lastEntry == nil {
		return ""
	}

	bytesCol := fmt.Sprintf("%02X", c.lastOpcode)
	for _, b := range c.lastOperand {
		bytesCol += fmt.Sprintf(" %02X", b)
	}

	asm := c.lastEntry.name + " " + c.disassembleOperand()

	return fmt.Sprintf("%04X  %-9s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.lastPC, bytesCol, strings.TrimSpace(asm),
		c.A, c.X, c.Y, c.P.Byte(), c.SP, c.cycles)
}

// disassembleOperand renders the operand bytes captured for the last
// instruction in the syntax conventional for its addressing mode. It
// works from the raw captured bytes rather than the (already advanced)
// live CPU state, except for Relative mode, which renders the branch
// target that decodeAddress left in c.addr.
func (c *CPU) disassembleOperand() string {
	op := c.lastOperand
	switch c.lastEntry.mode {
	case Implied, Accumulator:
		return ""
	case Immediate:
		return fmt.Sprintf("#$%02X", op[0])
	case ZeroPage:
		return fmt.Sprintf("$%02X", op[0])
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", op[0])
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", op[0])
	case Relative:
		return fmt.Sprintf("$%04X", c.addr)
	case Absolute:
		return fmt.Sprintf("$%02X%02X", op[1], op[0])
	case AbsoluteX:
		return fmt.Sprintf("$%02X%02X,X", op[1], op[0])
	case AbsoluteY:
		return fmt.Sprintf("$%02X%02X,Y", op[1], op[0])
	case Indirect:
		return fmt.Sprintf("($%02X%02X)", op[1], op[0])
	case IndirectX:
		return fmt.Sprintf("($%02X,X)", op[0])
	case IndirectY:
		return fmt.Sprintf("($%02X),Y", op[0])
	default:
		return ""
	}
}
