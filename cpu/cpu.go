// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"RAM_SIZE":  fmt.Sprintf("%v", RAM_SIZE),
	"WORD_BITS": fmt.Sprintf("%v", WORD_BITS),
	"ADDR_MASK": fmt.Sprintf("0x%x", (1<<ADDR_BITS)-1),
}

// Cpu is the simulation context for the IAS machine: the register file,
// the control state and main memory.
//
// A Cpu is owned by a single caller; it has no internal locking.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers        // Register file and CTRL.
	Memory    Memory // Main store.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU with zeroed registers and memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Ctrl = CTRL_LEFT_FETCH

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU to its startup state: PC and CTRL only.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.PC = 0
	cpu.Ctrl = CTRL_LEFT_FETCH
	cpu.Ticks = 0
}

// ZeroAllRegisters clears every register and returns CTRL to left_fetch.
func (cpu *Cpu) ZeroAllRegisters() {
	cpu.Registers = Registers{Ctrl: CTRL_LEFT_FETCH}
}

// ZeroAllRAM clears main memory.
func (cpu *Cpu) ZeroAllRAM() {
	clear(cpu.Memory[:])
}

// Location returns the address and side of the instruction in flight,
// or of the next instruction to be fetched.
func (cpu *Cpu) Location() (addr Word, right bool) {
	addr = cpu.PC
	switch cpu.Ctrl {
	case CTRL_RIGHT_FETCH, CTRL_RIGHT_FETCH_RAM:
		right = true
	case CTRL_RIGHT_EXECUTE:
		// PC has already advanced past the word.
		addr = (cpu.PC - 1) & (1<<ADDR_BITS - 1)
		right = true
	}
	return
}

// Fetch retrieves the next instruction into IR and MAR, as selected by CTRL.
func (cpu *Cpu) Fetch() (err error) {
	switch cpu.Ctrl {
	case CTRL_LEFT_FETCH:
		err = cpu.validateFetch(cpu.PC)
		if err != nil {
			return
		}
		cpu.MAR = cpu.PC
		cpu.MBR = cpu.Memory[cpu.MAR]
		cpu.IR = SelectBits(cpu.MBR, 32, OPCODE_BITS)
		cpu.MAR = SelectBits(cpu.MBR, HALF_BITS, ADDR_BITS)
		cpu.IBR = SelectBits(cpu.MBR, 0, HALF_BITS)
		cpu.Ctrl = CTRL_LEFT_EXECUTE
	case CTRL_RIGHT_FETCH:
		cpu.IR = SelectBits(cpu.IBR, ADDR_BITS, OPCODE_BITS)
		cpu.MAR = SelectBits(cpu.IBR, 0, ADDR_BITS)
		cpu.advance()
		cpu.Ctrl = CTRL_RIGHT_EXECUTE
	case CTRL_RIGHT_FETCH_RAM:
		err = cpu.validateFetch(cpu.PC)
		if err != nil {
			return
		}
		cpu.MAR = cpu.PC
		cpu.MBR = cpu.Memory[cpu.MAR]
		cpu.IR = SelectBits(cpu.MBR, ADDR_BITS, OPCODE_BITS)
		cpu.MAR = SelectBits(cpu.MBR, 0, ADDR_BITS)
		cpu.advance()
		cpu.Ctrl = CTRL_RIGHT_EXECUTE
	default:
		err = newError(ERR_INVALID_FETCH, "invalid attempt to fetch an instruction during an execute cycle")
		return
	}

	if cpu.Verbose {
		addr, right := cpu.Location()
		log.Printf("%03X%v: fetch %v", uint64(addr), side(right), DecodeInstruction(MakeInstruction(Opcode(cpu.IR), cpu.MAR)))
	}

	return
}

// advance moves PC to the next word, within the 12-bit register.
func (cpu *Cpu) advance() {
	cpu.PC = (cpu.PC + 1) & (1<<ADDR_BITS - 1)
}

// Execute runs the fetched instruction in IR.
func (cpu *Cpu) Execute() (err error) {
	if !cpu.Ctrl.Executing() {
		err = newError(ERR_INVALID_EXECUTION, "invalid attempt to execute an instruction during a fetch cycle")
		return
	}

	op := Opcode(cpu.IR)
	addr, right := cpu.Location()
	if !op.Defined() {
		err = newError(ERR_INVALID_INSTRUCTION, "attempt to execute a non-existent instruction with opcode %d at address 0x%X", uint8(op), uint64(addr))
		return
	}

	if cpu.Verbose {
		log.Printf("%03X%v: execute %v", uint64(addr), side(right), DecodeInstruction(MakeInstruction(op, cpu.MAR)))
	}

	err = instructions[op].execute(cpu)
	if err != nil {
		return
	}

	// A taken jump has already moved CTRL to a fetch state.
	switch cpu.Ctrl {
	case CTRL_LEFT_EXECUTE:
		cpu.Ctrl = CTRL_RIGHT_FETCH
	case CTRL_RIGHT_EXECUTE:
		cpu.Ctrl = CTRL_LEFT_FETCH
	}

	cpu.Ticks++

	return
}

// Step performs one fetch and execute pair.
func (cpu *Cpu) Step() (err error) {
	err = cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute()
	return
}

func side(right bool) string {
	if right {
		return "R"
	}
	return "L"
}
