// Command nestest runs an iNES ROM against the CPU core, entering at
// nestest's automation address ($C000) and printing one cpu.CPU.Trace
// line per instruction. The lines follow nestest.log's column layout,
// but show registers and cycles after each instruction and have no PPU
// column, so they do not match nestest.log byte for byte.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/git-gud-casual/nes-emu/bus"
	"github.com/git-gud-casual/nes-emu/cartridge"
	"github.com/git-gud-casual/nes-emu/cpu"
)

const (
	inesHeaderSize = 16

	// maxSteps bounds the run: nestest's log itself is a fixed,
	// finite number of instructions, and a divergent core can land on
	// a tight infinite loop instead of an UnknownOpcode.
	maxSteps = 30000
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nestest <rom.nes>")
		os.Exit(2)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "nestest:", err)
		os.Exit(1)
	}
	if len(rom) <= inesHeaderSize {
		fmt.Fprintln(os.Stderr, "nestest: ROM too small to contain an iNES header")
		os.Exit(1)
	}
	prgBanks := int(rom[4]) // iNES header byte 4: 16 KiB PRG-ROM bank count
	prgSize := prgBanks * 16 * 1024
	if len(rom) < inesHeaderSize+prgSize {
		fmt.Fprintln(os.Stderr, "nestest: ROM truncated before end of PRG-ROM")
		os.Exit(1)
	}
	prg := rom[inesHeaderSize : inesHeaderSize+prgSize]

	b := bus.New(cartridge.New(prg), nil)
	c := cpu.New(b)
	c.Reset()
	c.SetPC(0xC000)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for i := 0; i < maxSteps; i++ {
		if err := c.Step(); err != nil {
			fmt.Fprintf(out, "nestest: stopped: %v\n", err)
			break
		}
		fmt.Fprintln(out, c.Trace())
	}

	fmt.Fprintf(out, "final cycle count: %d\n", c.Cycles())
}
