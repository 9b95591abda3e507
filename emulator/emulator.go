// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ias/asm"
	"github.com/ezrec/ias/cpu"
	"github.com/ezrec/ias/internal"
)

const (
	MAX_TICKS = 1 << 20 // Default limit of ticks for Run.
)

var _emulator_defines = map[string]string{
	"MAX_TICKS": fmt.Sprintf("%v", MAX_TICKS),
}

// Emulator state. CPU + the loaded program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &asm.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Defines(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset clears the registers, loads the program over memory, and returns
// the CPU to its startup state.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.ZeroAllRegisters()

	if emu.Program != nil {
		err = emu.Program.Load(emu.Cpu)
		if err != nil {
			return
		}
	}

	emu.Cpu.Reset()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number of the next instruction.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	addr, right := emu.Cpu.Location()
	return emu.Program.LineNo(int(addr), right)
}

// Tick performs a single fetch and execute of the emulator.
//
// done is set when the instruction jumped to itself, which is how
// an IAS program halts.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	addr, right := emu.Cpu.Location()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: int(addr), Right: right, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if err != nil {
		return
	}

	next, next_right := emu.Cpu.Location()
	done = next == addr && next_right == right

	if done && emu.Verbose {
		log.Printf("emulator: halt at %03X after %d ticks", uint64(addr), emu.Cpu.Ticks)
	}

	return
}

// Run ticks the emulator until it halts, fails, or reaches limit ticks.
// A limit of zero or less runs without limit.
func (emu *Emulator) Run(limit int) (ticks int, err error) {
	for limit <= 0 || ticks < limit {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		ticks++
		if done {
			return
		}
	}

	err = ErrTickLimit
	return
}
