package asm

import (
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/ias/cpu"
)

// Program is an assembled memory image, with its source lines.
type Program struct {
	Lines []Line           // Assembled lines, in source order.
	Words map[int]cpu.Word // Memory words by address.
}

// set stores a line into the memory image. Later lines override earlier
// ones for the same half word.
func (prog *Program) set(line Line) {
	word := prog.Words[line.Address]
	switch {
	case line.Data:
		word = line.Value
	case line.Right:
		word = cpu.MakeWord(word.Left(), line.Value)
	default:
		word = cpu.MakeWord(line.Value, word.Right())
	}
	prog.Words[line.Address] = word
}

// Map returns the program as memory map text, in address order.
func (prog *Program) Map() string {
	var text strings.Builder
	for _, addr := range slices.Sorted(maps.Keys(prog.Words)) {
		text.WriteString(cpu.FormatWord(addr, prog.Words[addr]))
	}
	return text.String()
}

// Load stores the program into the CPU memory. Words the program does not
// define are left unchanged.
func (prog *Program) Load(c *cpu.Cpu) (err error) {
	return c.LoadRAM(prog.Map())
}

// LineNo returns the source line of the instruction at a location, or
// 0 if the location has no source line.
func (prog *Program) LineNo(addr int, right bool) (lineno int) {
	for _, line := range prog.Lines {
		if line.Address != addr {
			continue
		}
		if line.Data || line.Right == right {
			lineno = line.LineNo
		}
	}
	return
}
