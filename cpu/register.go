package cpu

import (
	"strings"
)

const (
	RAM_SIZE = 1024 // Words in memory.
)

// Ctrl is the fetch/execute control state of the CPU.
type Ctrl int

//go:generate go tool stringer -linecomment -type=Ctrl
const (
	CTRL_LEFT_FETCH      = Ctrl(0) // left_fetch
	CTRL_RIGHT_FETCH     = Ctrl(1) // right_fetch
	CTRL_RIGHT_FETCH_RAM = Ctrl(2) // right_fetch_RAM
	CTRL_LEFT_EXECUTE    = Ctrl(3) // left_execute
	CTRL_RIGHT_EXECUTE   = Ctrl(4) // right_execute
)

// Executing is true for the two execute states.
func (ctrl Ctrl) Executing() bool {
	return ctrl == CTRL_LEFT_EXECUTE || ctrl == CTRL_RIGHT_EXECUTE
}

// LookupCtrl finds a control state by its exact name.
func LookupCtrl(name string) (ctrl Ctrl, ok bool) {
	for ctrl = CTRL_LEFT_FETCH; ctrl <= CTRL_RIGHT_EXECUTE; ctrl++ {
		if ctrl.String() == name {
			ok = true
			return
		}
	}
	return
}

// Register names a CPU register.
type Register int

const (
	REG_PC   = Register(iota) // Program counter.
	REG_MAR                   // Memory address register.
	REG_IR                    // Instruction register (opcode only).
	REG_IBR                   // Instruction buffer register.
	REG_MBR                   // Memory buffer register.
	REG_AC                    // Accumulator.
	REG_MQ                    // Multiplier/quotient.
	REG_CTRL                  // Control state, not a bitfield.
	REG_COUNT
)

var registerInfo = [REG_COUNT]struct {
	name  string
	width uint
}{
	REG_PC:   {"pc", ADDR_BITS},
	REG_MAR:  {"mar", ADDR_BITS},
	REG_IR:   {"ir", OPCODE_BITS},
	REG_IBR:  {"ibr", HALF_BITS},
	REG_MBR:  {"mbr", WORD_BITS},
	REG_AC:   {"ac", WORD_BITS},
	REG_MQ:   {"mq", WORD_BITS},
	REG_CTRL: {"ctrl", 0},
}

func (reg Register) String() string {
	if reg < 0 || reg >= REG_COUNT {
		return "?"
	}
	return registerInfo[reg].name
}

// Width is the number of bits the register physically holds.
func (reg Register) Width() uint {
	return registerInfo[reg].width
}

// LookupRegister finds a register by name, ignoring case.
func LookupRegister(name string) (reg Register, ok bool) {
	name = strings.ToLower(name)
	for reg = REG_PC; reg < REG_COUNT; reg++ {
		if registerInfo[reg].name == name {
			ok = true
			return
		}
	}
	return
}

// Registers is the CPU register file.
type Registers struct {
	PC  Word // 12 bits
	MAR Word // 12 bits
	IR  Word // 8 bits
	IBR Word // 20 bits
	MBR Word // 40 bits
	AC  Word // 40 bits
	MQ  Word // 40 bits

	Ctrl Ctrl
}

// ref returns the storage of a bitfield register.
func (regs *Registers) ref(reg Register) *Word {
	switch reg {
	case REG_PC:
		return &regs.PC
	case REG_MAR:
		return &regs.MAR
	case REG_IR:
		return &regs.IR
	case REG_IBR:
		return &regs.IBR
	case REG_MBR:
		return &regs.MBR
	case REG_AC:
		return &regs.AC
	case REG_MQ:
		return &regs.MQ
	}
	panic("not a bitfield register: " + reg.String())
}

// Memory is the 1024 word main store.
type Memory [RAM_SIZE]Word
