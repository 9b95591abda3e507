package cpu

import (
	"strings"
)

// Opcode is an 8-bit IAS operation code.
type Opcode uint8

const (
	OP_LOAD        = Opcode(1)  // LOAD M(X)
	OP_LOAD_NEG    = Opcode(2)  // LOAD -M(X)
	OP_LOAD_ABS    = Opcode(3)  // LOAD |M(X)|
	OP_ADD         = Opcode(5)  // ADD M(X)
	OP_SUB         = Opcode(6)  // SUB M(X)
	OP_ADD_ABS     = Opcode(7)  // ADD |M(X)|
	OP_SUB_ABS     = Opcode(8)  // SUB |M(X)|
	OP_LOAD_MQ_M   = Opcode(9)  // LOAD MQ,M(X)
	OP_LOAD_MQ     = Opcode(10) // LOAD MQ
	OP_MUL         = Opcode(11) // MUL M(X)
	OP_DIV         = Opcode(12) // DIV M(X)
	OP_JUMP_LEFT   = Opcode(13) // JUMP M(X,0:19)
	OP_JUMP_RIGHT  = Opcode(14) // JUMP M(X,20:39)
	OP_JUMPP_LEFT  = Opcode(15) // JUMP+ M(X,0:19)
	OP_JUMPP_RIGHT = Opcode(16) // JUMP+ M(X,20:39)
	OP_STOR_LEFT   = Opcode(18) // STOR M(X,8:19)
	OP_STOR_RIGHT  = Opcode(19) // STOR M(X,28:39)
	OP_LSH         = Opcode(20) // LSH
	OP_RSH         = Opcode(21) // RSH
	OP_STOR        = Opcode(33) // STOR M(X)
)

const ADDR_PLACEHOLDER = "X" // Address operand in a mnemonic template.

// instruction describes a defined opcode.
type instruction struct {
	mnemonic string           // Template, with ADDR_PLACEHOLDER for the address.
	jump     bool             // Sets CTRL itself when taken.
	execute  func(*Cpu) error // Effect on the machine.
}

// instructions is indexed by opcode; undefined opcodes have a nil execute.
var instructions = [1 << OPCODE_BITS]instruction{
	OP_LOAD:        {mnemonic: "LOAD M(X)", execute: (*Cpu).opLoad},
	OP_LOAD_NEG:    {mnemonic: "LOAD -M(X)", execute: (*Cpu).opLoadNeg},
	OP_LOAD_ABS:    {mnemonic: "LOAD |M(X)|", execute: (*Cpu).opLoadAbs},
	OP_ADD:         {mnemonic: "ADD M(X)", execute: (*Cpu).opAdd},
	OP_SUB:         {mnemonic: "SUB M(X)", execute: (*Cpu).opSub},
	OP_ADD_ABS:     {mnemonic: "ADD |M(X)|", execute: (*Cpu).opAddAbs},
	OP_SUB_ABS:     {mnemonic: "SUB |M(X)|", execute: (*Cpu).opSubAbs},
	OP_LOAD_MQ_M:   {mnemonic: "LOAD MQ,M(X)", execute: (*Cpu).opLoadMqM},
	OP_LOAD_MQ:     {mnemonic: "LOAD MQ", execute: (*Cpu).opLoadMq},
	OP_MUL:         {mnemonic: "MUL M(X)", execute: (*Cpu).opMul},
	OP_DIV:         {mnemonic: "DIV M(X)", execute: (*Cpu).opDiv},
	OP_JUMP_LEFT:   {mnemonic: "JUMP M(X,0:19)", jump: true, execute: (*Cpu).opJumpLeft},
	OP_JUMP_RIGHT:  {mnemonic: "JUMP M(X,20:39)", jump: true, execute: (*Cpu).opJumpRight},
	OP_JUMPP_LEFT:  {mnemonic: "JUMP+ M(X,0:19)", jump: true, execute: (*Cpu).opJumpPlusLeft},
	OP_JUMPP_RIGHT: {mnemonic: "JUMP+ M(X,20:39)", jump: true, execute: (*Cpu).opJumpPlusRight},
	OP_STOR_LEFT:   {mnemonic: "STOR M(X,8:19)", execute: (*Cpu).opStorLeft},
	OP_STOR_RIGHT:  {mnemonic: "STOR M(X,28:39)", execute: (*Cpu).opStorRight},
	OP_LSH:         {mnemonic: "LSH", execute: (*Cpu).opLsh},
	OP_RSH:         {mnemonic: "RSH", execute: (*Cpu).opRsh},
	OP_STOR:        {mnemonic: "STOR M(X)", execute: (*Cpu).opStor},
}

// Opcodes returns the defined opcodes in ascending order.
func Opcodes() (ops []Opcode) {
	for n := range instructions {
		if instructions[n].execute != nil {
			ops = append(ops, Opcode(n))
		}
	}
	return
}

// Defined is true if the opcode names an IAS instruction.
func (op Opcode) Defined() bool {
	return instructions[op].execute != nil
}

// Mnemonic returns the instruction template, or "" if undefined.
func (op Opcode) Mnemonic() string {
	return instructions[op].mnemonic
}

// Jump is true for the jump family, which set CTRL themselves.
func (op Opcode) Jump() bool {
	return instructions[op].jump
}

// Addressed is true if the template takes an address operand.
func (op Opcode) Addressed() bool {
	return strings.Contains(instructions[op].mnemonic, ADDR_PLACEHOLDER)
}

// lookupOpcode finds an opcode by its template, ignoring case and whitespace.
func lookupOpcode(text string) (op Opcode, ok bool) {
	key := strings.ToUpper(stripSpace(text))
	for _, op = range Opcodes() {
		if stripSpace(op.Mnemonic()) == key {
			ok = true
			return
		}
	}
	return
}
