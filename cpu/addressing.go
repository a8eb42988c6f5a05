package cpu

import "github.com/git-gud-casual/nes-emu/mask"

// Mode identifies one of the 6502's 13 addressing modes. Most modes
// resolve to an effective address in c.addr; Accumulator has no
// address at all (the operand is A itself) and Implied has neither.
type Mode int

const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// operandBytes returns how many bytes (beyond the opcode byte itself)
// each mode consumes, used by Trace to render the raw instruction
// bytes.
func operandBytes(m Mode) int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// decodeAddress resolves the operand for mode, advancing PC past any
// operand bytes and leaving the result in c.addr (or c.accumulator for
// Accumulator mode). It also sets c.pageCrossed for the three modes
// where an index addition can cross a page boundary.
func (c *CPU) decodeAddress(m Mode) {
	c.accumulator = false
	c.pageCrossed = false

	switch m {
	case Implied:
		// no operand

	case Accumulator:
		c.accumulator = true

	case Immediate:
		c.addr = c.PC
		c.PC++

	case ZeroPage:
		c.addr = uint16(c.Bus.Read(c.PC))
		c.PC++

	case ZeroPageX:
		c.addr = uint16(byte(c.Bus.Read(c.PC) + c.X))
		c.PC++

	case ZeroPageY:
		c.addr = uint16(byte(c.Bus.Read(c.PC) + c.Y))
		c.PC++

	case Relative:
		offset := int8(c.Bus.Read(c.PC))
		c.PC++
		// Relative to the PC of the instruction following the branch
		// operand, per spec.
		c.addr = uint16(int32(c.PC) + int32(offset))

	case Absolute:
		lo := c.Bus.Read(c.PC)
		c.PC++
		hi := c.Bus.Read(c.PC)
		c.PC++
		c.addr = mask.Word(hi, lo)

	case AbsoluteX:
		lo := c.Bus.Read(c.PC)
		c.PC++
		hi := c.Bus.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		c.addr = base + uint16(c.X)
		c.pageCrossed = base&0xFF00 != c.addr&0xFF00

	case AbsoluteY:
		lo := c.Bus.Read(c.PC)
		c.PC++
		hi := c.Bus.Read(c.PC)
		c.PC++
		base := mask.Word(hi, lo)
		c.addr = base + uint16(c.Y)
		c.pageCrossed = base&0xFF00 != c.addr&0xFF00

	case Indirect:
		lo := c.Bus.Read(c.PC)
		c.PC++
		hi := c.Bus.Read(c.PC)
		c.PC++
		ptr := mask.Word(hi, lo)
		c.addr = c.readWordBug(ptr)

	case IndirectX:
		zp := c.Bus.Read(c.PC)
		c.PC++
		ptr := byte(zp + c.X)
		lo := c.Bus.Read(uint16(ptr))
		hi := c.Bus.Read(uint16(byte(ptr + 1)))
		c.addr = mask.Word(hi, lo)

	case IndirectY:
		zp := c.Bus.Read(c.PC)
		c.PC++
		lo := c.Bus.Read(uint16(zp))
		hi := c.Bus.Read(uint16(byte(zp + 1)))
		base := mask.Word(hi, lo)
		c.addr = base + uint16(c.Y)
		c.pageCrossed = base&0xFF00 != c.addr&0xFF00
	}
}

// readWordBug reads the word at ptr, reproducing the JMP-indirect
// hardware bug: if the low byte of ptr is $FF, the high byte is read
// from ptr&$FF00 instead of ptr+1, since the pointer fetch never
// crosses into the next page.
func (c *CPU) readWordBug(ptr uint16) uint16 {
	lo := c.Bus.Read(ptr)
	var hi byte
	if ptr&0x00FF == 0x00FF {
		hi = c.Bus.Read(ptr & 0xFF00)
	} else {
		hi = c.Bus.Read(ptr + 1)
	}
	return mask.Word(hi, lo)
}

// load returns the operand's current value: the accumulator for
// Accumulator mode, otherwise a bus read at c.addr.
func (c *CPU) load() byte {
	if c.accumulator {
		return c.A
	}
	return c.Bus.Read(c.addr)
}

// store writes v back to the operand's location.
func (c *CPU) store(v byte) {
	if c.accumulator {
		c.A = v
	} else {
		c.Bus.Write(c.addr, v)
	}
}
