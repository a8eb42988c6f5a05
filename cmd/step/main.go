// Command step launches an interactive TUI debugger over a cartridge
// image, letting the user single-step the CPU and inspect its state.
package main

import (
	"fmt"
	"os"

	"github.com/git-gud-casual/nes-emu/bus"
	"github.com/git-gud-casual/nes-emu/cartridge"
	"github.com/git-gud-casual/nes-emu/cpu"
	"github.com/git-gud-casual/nes-emu/ppu"
)

const inesHeaderSize = 16

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: step <rom.nes>")
		os.Exit(2)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "step:", err)
		os.Exit(1)
	}
	if len(rom) <= inesHeaderSize {
		fmt.Fprintln(os.Stderr, "step: ROM too small to contain an iNES header")
		os.Exit(1)
	}
	prgBanks := int(rom[4]) // iNES header byte 4: 16 KiB PRG-ROM bank count
	prgSize := prgBanks * 16 * 1024
	if len(rom) < inesHeaderSize+prgSize {
		fmt.Fprintln(os.Stderr, "step: ROM truncated before end of PRG-ROM")
		os.Exit(1)
	}
	prg := rom[inesHeaderSize : inesHeaderSize+prgSize]

	b := bus.New(cartridge.New(prg), ppu.New())
	c := cpu.New(b)
	c.Reset()

	if err := c.Debug(); err != nil {
		fmt.Fprintln(os.Stderr, "step:", err)
		os.Exit(1)
	}
}
