// Package cartridge implements the simplest NES cartridge layout, NROM:
// a fixed PRG-ROM bank mapped (and, for the 16 KiB variant, mirrored)
// across the $8000-$FFFF window.
package cartridge

import "fmt"

const baseAddr = 0x8000

// AddressOutOfRange is returned when Read is asked for an address below
// the cartridge window ($8000). A well-formed ROM never triggers this;
// it indicates a programmer error in the caller (normally the bus,
// which should never forward addresses below $4020 to the cartridge).
type AddressOutOfRange struct {
	Addr uint16
}

func (e AddressOutOfRange) Error() string {
	return fmt.Sprintf("cartridge: address $%04X is below the PRG-ROM window", e.Addr)
}

// Cartridge is a read-only byte-addressable PRG-ROM image. A 16 KiB
// image (NROM-128) mirrors across $8000-$FFFF; a 32 KiB image
// (NROM-256) fills the window without mirroring.
type Cartridge struct {
	prg []byte
}

// New wraps a raw PRG-ROM byte slice (already stripped of any iNES
// header) as an NROM cartridge.
func New(prg []byte) *Cartridge {
	c := &Cartridge{prg: make([]byte, len(prg))}
	copy(c.prg, prg)
	return c
}

// Read returns the byte at addr, mirroring a 16 KiB image across the
// $8000-$FFFF window.
func (c *Cartridge) Read(addr uint16) (byte, error) {
	if addr < baseAddr {
		return 0, AddressOutOfRange{Addr: addr}
	}
	if len(c.prg) == 0 {
		return 0, nil
	}
	offset := int(addr-baseAddr) % len(c.prg)
	return c.prg[offset], nil
}

// Write is a no-op: PRG-ROM is read-only. Callers that need to surface
// a diagnostic for a write into cartridge space do so at the bus level
// (bus.ReadOnlyWrite), not here.
func (c *Cartridge) Write(addr uint16, v byte) {}

// Len returns the size in bytes of the underlying PRG-ROM image.
func (c *Cartridge) Len() int {
	return len(c.prg)
}
