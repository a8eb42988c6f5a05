package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllRegistersReadZero(t *testing.T) {
	s := New()
	for i := byte(0); i < 8; i++ {
		assert.Equal(t, byte(0), s.ReadRegister(i))
	}
}

func TestControlAndMaskLatches(t *testing.T) {
	s := New()
	s.WriteRegister(0, 0x80)
	s.WriteRegister(1, 0x1E)

	assert.Equal(t, byte(0x80), s.Control())
	assert.Equal(t, byte(0x1E), s.Mask())

	// Writes are latched for display only; reads are unaffected.
	assert.Equal(t, byte(0), s.ReadRegister(0))
	assert.Equal(t, byte(0), s.ReadRegister(1))
}

func TestOtherRegistersAreNoOps(t *testing.T) {
	s := New()
	s.WriteRegister(5, 0xFF)
	assert.Equal(t, byte(0), s.ReadRegister(5))
}
