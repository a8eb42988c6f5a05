package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBus is a flat 64 KiB address space used to exercise the CPU in
// isolation, without pulling in the bus package's RAM-mirroring and
// cartridge-routing rules.
type fakeBus struct {
	mem [0x10000]byte
}

func (b *fakeBus) Read(addr uint16) byte     { return b.mem[addr] }
func (b *fakeBus) Write(addr uint16, v byte) { b.mem[addr] = v }

func (b *fakeBus) load(addr uint16, data ...byte) {
	copy(b.mem[addr:], data)
}

func (b *fakeBus) setResetVector(addr uint16) {
	b.mem[0xFFFC] = byte(addr)
	b.mem[0xFFFD] = byte(addr >> 8)
}

func newTestCPU() (*CPU, *fakeBus) {
	b := &fakeBus{}
	b.setResetVector(0x8000)
	c := New(b)
	c.Reset()
	return c, b
}

func TestResetSequence(t *testing.T) {
	c, _ := newTestCPU()
	assert.Equal(t, uint16(0x8000), c.PCValue())
	assert.Equal(t, byte(0xFD), c.SP)
	assert.Equal(t, byte(0x24), c.P.Byte())
	assert.Equal(t, uint64(0), c.Cycles())
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000, 0xA9, 0x00) // LDA #$00
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0), c.A)
	assert.True(t, c.P.Zero())
	assert.False(t, c.P.Negative())
	assert.Equal(t, uint64(2), c.Cycles())

	c2, b2 := newTestCPU()
	b2.load(0x8000, 0xA9, 0x80) // LDA #$80
	require.NoError(t, c2.Step())
	assert.False(t, c2.P.Zero())
	assert.True(t, c2.P.Negative())
}

func TestADCCarryChain(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0xA9, 0xFF, // LDA #$FF
		0x69, 0x02, // ADC #$02 -> A=0x01, carry set
		0x69, 0x00, // ADC #$00 -> consumes carry -> A=0x02
	)
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x01), c.A)
	assert.True(t, c.P.Carry())

	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x02), c.A)
	assert.False(t, c.P.Carry())
}

func TestSBCBorrow(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0x38,       // SEC (no borrow going in)
		0xA9, 0x05, // LDA #$05
		0xE9, 0x01, // SBC #$01 -> 4
	)
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x04), c.A)
	assert.True(t, c.P.Carry()) // no borrow occurred
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	b.load(0x9000, 0x60)             // RTS
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x9000), c.PCValue())
	assert.Equal(t, byte(0xFB), c.SP) // pushed 2 bytes

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8003), c.PCValue())
	assert.Equal(t, byte(0xFD), c.SP)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	b.mem[0x30FF] = 0x40
	b.mem[0x3000] = 0x50 // hardware bug: high byte from $3000, not $3100
	b.mem[0x3100] = 0x99
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x5040), c.PCValue())
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0xA9, 0x42, // LDA #$42
		0x48,       // PHA
		0xA9, 0x00, // LDA #$00
		0x68, // PLA
	)
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step())
	}
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, byte(0xFD), c.SP) // balanced
}

func TestPHPPLPPreservesFlags(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0x38, // SEC
		0xF8, // SED
		0x08, // PHP
		0x18, // CLC
		0xD8, // CLD
		0x28, // PLP
	)
	for i := 0; i < 6; i++ {
		require.NoError(t, c.Step())
	}
	assert.True(t, c.P.Carry())
	assert.True(t, c.P.Decimal())
}

func TestDEXWraps(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0xA2, 0x00, // LDX #$00
		0xCA, // DEX -> 0xFF
	)
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0xFF), c.X)
	assert.True(t, c.P.Negative())
	assert.False(t, c.P.Zero())
}

func TestROLThroughCarry(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0x38,       // SEC
		0xA9, 0x40, // LDA #$40
		0x2A, // ROL A -> 0x81, carry out clear
	)
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x81), c.A)
	assert.False(t, c.P.Carry())
	assert.True(t, c.P.Negative())
}

func TestBranchTakenAddsCycleAndPageCrossPenalty(t *testing.T) {
	c, b := newTestCPU()
	// BEQ to an address on the next page from the instruction that
	// follows the branch ($80FE).
	b.load(0x80FA, 0xA9, 0x00) // LDA #$00 sets Z
	b.load(0x80FC, 0xF0, 0x05) // BEQ +5 -> targets $8103 (crosses page)
	c.SetPC(0x80FA)
	require.NoError(t, c.Step()) // LDA
	before := c.Cycles()
	require.NoError(t, c.Step()) // BEQ
	assert.Equal(t, uint16(0x8103), c.PCValue())
	assert.Equal(t, before+2+2, c.Cycles()) // base 2 + taken(1) + page-cross(1)
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000, 0x02) // unassigned (JAM family)
	err := c.Step()
	require.Error(t, err)
	var unk UnknownOpcode
	require.ErrorAs(t, err, &unk)
	assert.Equal(t, byte(0x02), unk.Opcode)
}

func TestBRKPushesReturnAddressPlusOneAndSetsBreak(t *testing.T) {
	c, b := newTestCPU()
	b.mem[0xFFFE] = 0x00
	b.mem[0xFFFF] = 0x90
	b.load(0x8000, 0x00, 0xAA) // BRK <padding>
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x9000), c.PCValue())

	// Return address $8002: one past the byte following BRK.
	assert.Equal(t, byte(0x80), c.Bus.Read(0x01FD))
	assert.Equal(t, byte(0x02), c.Bus.Read(0x01FC))

	pulledP := c.Bus.Read(0x0100 | uint16(c.SP+1))
	assert.NotEqual(t, byte(0), pulledP&0x10) // B flag set in the pushed copy
}

func TestIllegalLAXLoadsBothAAndX(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000, 0xA7, 0x10) // LAX $10
	b.mem[0x0010] = 0x77
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x77), c.A)
	assert.Equal(t, byte(0x77), c.X)
}

func TestIllegalDCPCombinesDecAndCompare(t *testing.T) {
	c, b := newTestCPU()
	b.load(0x8000,
		0xA9, 0x05, // LDA #$05
		0xC7, 0x10, // DCP $10 -> mem becomes 4, compares against A
	)
	b.mem[0x0010] = 0x05
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x04), b.mem[0x0010])
	assert.True(t, c.P.Carry()) // A(5) >= mem(4)
}
