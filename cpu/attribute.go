package cpu

import (
	"strconv"
	"strings"
)

// Attribute is a named view of a bitfield inside a word.
type Attribute int

const (
	ATTR_LEFT_OPCODE = Attribute(iota)
	ATTR_LEFT_OPCODE_HEX
	ATTR_LEFT_OPCODE_TEXT
	ATTR_LEFT_ADDR
	ATTR_LEFT_ADDR_HEX
	ATTR_LEFT_INSTRUCTION
	ATTR_LEFT_INSTRUCTION_HEX
	ATTR_LEFT_INSTRUCTION_TEXT
	ATTR_RIGHT_OPCODE
	ATTR_RIGHT_OPCODE_HEX
	ATTR_RIGHT_OPCODE_TEXT
	ATTR_RIGHT_ADDR
	ATTR_RIGHT_ADDR_HEX
	ATTR_RIGHT_INSTRUCTION
	ATTR_RIGHT_INSTRUCTION_HEX
	ATTR_RIGHT_INSTRUCTION_TEXT
	ATTR_WORD_VALUE
	ATTR_WORD_VALUE_HEX
	ATTR_COUNT
)

// Format is the textual representation of an attribute's value.
type Format int

const (
	FORMAT_DECIMAL          = Format(iota) // Unsigned decimal.
	FORMAT_HEX                             // Uppercase hex, no prefix.
	FORMAT_OPCODE_TEXT                     // Mnemonic template.
	FORMAT_INSTRUCTION_TEXT                // Decoded instruction.
	FORMAT_SIGNED                          // Two's complement decimal.
)

// targetSet is a set of registers, plus RAM.
type targetSet uint16

const TARGET_RAM = targetSet(1 << REG_COUNT)

func targets(regs ...Register) (set targetSet) {
	set = TARGET_RAM
	for _, reg := range regs {
		set |= 1 << reg
	}
	return
}

func (set targetSet) has(reg Register) bool {
	return set&(1<<reg) != 0
}

var (
	opcodeTargets      = targets(REG_IR, REG_IBR, REG_MBR, REG_AC, REG_MQ)
	addrTargets        = targets(REG_MAR, REG_PC, REG_IBR, REG_MBR, REG_AC, REG_MQ)
	instructionTargets = targets(REG_IR, REG_MAR, REG_PC, REG_IBR, REG_MBR, REG_AC, REG_MQ)
	wordTargets        = targets(REG_MBR, REG_AC, REG_MQ)
)

// descriptor is the bitfield, conversion and applicability of an attribute.
type descriptor struct {
	name     string
	lsb      uint
	width    uint
	format   Format
	targets  targetSet
	validate func(field Word) bool // Extra check beyond the field width.
}

func validOpcode(field Word) bool {
	return Opcode(field).Defined()
}

var descriptors = [ATTR_COUNT]descriptor{
	ATTR_LEFT_OPCODE:            {"leftopcode", 32, OPCODE_BITS, FORMAT_DECIMAL, opcodeTargets, validOpcode},
	ATTR_LEFT_OPCODE_HEX:        {"leftopcodehex", 32, OPCODE_BITS, FORMAT_HEX, opcodeTargets, validOpcode},
	ATTR_LEFT_OPCODE_TEXT:       {"leftopcodetext", 32, OPCODE_BITS, FORMAT_OPCODE_TEXT, opcodeTargets, validOpcode},
	ATTR_LEFT_ADDR:              {"leftaddr", 20, ADDR_BITS, FORMAT_DECIMAL, addrTargets, nil},
	ATTR_LEFT_ADDR_HEX:          {"leftaddrhex", 20, ADDR_BITS, FORMAT_HEX, addrTargets, nil},
	ATTR_LEFT_INSTRUCTION:       {"leftinstruction", 20, HALF_BITS, FORMAT_DECIMAL, instructionTargets, nil},
	ATTR_LEFT_INSTRUCTION_HEX:   {"leftinstructionhex", 20, HALF_BITS, FORMAT_HEX, instructionTargets, nil},
	ATTR_LEFT_INSTRUCTION_TEXT:  {"leftinstructiontext", 20, HALF_BITS, FORMAT_INSTRUCTION_TEXT, instructionTargets, nil},
	ATTR_RIGHT_OPCODE:           {"rightopcode", 12, OPCODE_BITS, FORMAT_DECIMAL, opcodeTargets, validOpcode},
	ATTR_RIGHT_OPCODE_HEX:       {"rightopcodehex", 12, OPCODE_BITS, FORMAT_HEX, opcodeTargets, validOpcode},
	ATTR_RIGHT_OPCODE_TEXT:      {"rightopcodetext", 12, OPCODE_BITS, FORMAT_OPCODE_TEXT, opcodeTargets, validOpcode},
	ATTR_RIGHT_ADDR:             {"rightaddr", 0, ADDR_BITS, FORMAT_DECIMAL, addrTargets, nil},
	ATTR_RIGHT_ADDR_HEX:         {"rightaddrhex", 0, ADDR_BITS, FORMAT_HEX, addrTargets, nil},
	ATTR_RIGHT_INSTRUCTION:      {"rightinstruction", 0, HALF_BITS, FORMAT_DECIMAL, instructionTargets, nil},
	ATTR_RIGHT_INSTRUCTION_HEX:  {"rightinstructionhex", 0, HALF_BITS, FORMAT_HEX, instructionTargets, nil},
	ATTR_RIGHT_INSTRUCTION_TEXT: {"rightinstructiontext", 0, HALF_BITS, FORMAT_INSTRUCTION_TEXT, instructionTargets, nil},
	ATTR_WORD_VALUE:             {"wordvalue", 0, WORD_BITS, FORMAT_SIGNED, wordTargets, nil},
	ATTR_WORD_VALUE_HEX:         {"wordvaluehex", 0, WORD_BITS, FORMAT_HEX, wordTargets, nil},
}

func (attr Attribute) String() string {
	if attr < 0 || attr >= ATTR_COUNT {
		return "?"
	}
	return descriptors[attr].name
}

// Format returns the representation used for the attribute's values.
func (attr Attribute) Format() Format {
	return descriptors[attr].format
}

// Left is true for the attributes of the left instruction field.
func (attr Attribute) Left() bool {
	return attr <= ATTR_LEFT_INSTRUCTION_TEXT
}

// twin returns the right-hand attribute for a left-hand one.
func (attr Attribute) twin() Attribute {
	if attr.Left() {
		return attr + ATTR_RIGHT_OPCODE - ATTR_LEFT_OPCODE
	}
	return attr
}

// LookupAttribute finds an attribute by name, ignoring case.
func LookupAttribute(name string) (attr Attribute, ok bool) {
	name = strings.ToLower(name)
	for attr = 0; attr < ATTR_COUNT; attr++ {
		if descriptors[attr].name == name {
			ok = true
			return
		}
	}
	return
}

// Extract returns the attribute's raw field from a word.
func (attr Attribute) Extract(word Word) Word {
	desc := &descriptors[attr]
	return SelectBits(word, desc.lsb, desc.width)
}

// Insert returns word with the attribute's field replaced.
func (attr Attribute) Insert(word Word, field Word) Word {
	desc := &descriptors[attr]
	return SpliceBits(word, desc.lsb, desc.width, field)
}

// Value converts a raw field to the attribute's textual value.
func (attr Attribute) Value(field Word) string {
	switch descriptors[attr].format {
	case FORMAT_HEX:
		return strings.ToUpper(strconv.FormatUint(uint64(field), 16))
	case FORMAT_OPCODE_TEXT:
		op := Opcode(field)
		if !op.Defined() {
			return BLANK_INSTRUCTION
		}
		return op.Mnemonic()
	case FORMAT_INSTRUCTION_TEXT:
		return DecodeInstruction(field)
	case FORMAT_SIGNED:
		return strconv.FormatInt(field.Int64(), 10)
	default:
		return strconv.FormatUint(uint64(field), 10)
	}
}

// Field converts a textual value to the attribute's raw field.
// ok is false when the value is malformed or fails the attribute's
// validator; err carries failures from the instruction codec.
func (attr Attribute) Field(value string) (field Word, ok bool, err error) {
	desc := &descriptors[attr]
	value = strings.TrimSpace(value)

	switch desc.format {
	case FORMAT_DECIMAL:
		var v uint64
		v, err = strconv.ParseUint(value, 10, 64)
		if err != nil {
			err = nil
			return
		}
		field = Word(v)
	case FORMAT_HEX:
		var v uint64
		value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
		v, err = strconv.ParseUint(value, 16, 64)
		if err != nil {
			err = nil
			return
		}
		field = Word(v)
	case FORMAT_OPCODE_TEXT:
		var op Opcode
		op, ok = lookupOpcode(value)
		if !ok {
			return
		}
		field = Word(op)
	case FORMAT_INSTRUCTION_TEXT:
		field, err = EncodeInstruction(value)
		if err != nil {
			return
		}
	case FORMAT_SIGNED:
		var v int64
		v, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			err = nil
			return
		}
		field, ok = WordFromInt64(v)
		if !ok {
			return
		}
	}

	ok = validateNumber(uint64(field), desc.width) == nil
	if ok && desc.validate != nil {
		ok = desc.validate(field)
	}

	return
}

// Attributes returns every attribute, in registry order.
func Attributes() (attrs []Attribute) {
	for attr := Attribute(0); attr < ATTR_COUNT; attr++ {
		attrs = append(attrs, attr)
	}
	return
}

// AppliesTo is true if the attribute is a legal view of the register.
func (attr Attribute) AppliesTo(reg Register) bool {
	return descriptors[attr].targets.has(reg)
}

// lookupRAM resolves an attribute name for a memory word.
func lookupRAM(name string) (attr Attribute, err error) {
	attr, ok := LookupAttribute(name)
	if !ok {
		err = newError(ERR_INVALID_MEMORY_ATTRIBUTE, "the attribute %v is not valid for a 40 bit word in RAM", name)
	}
	return
}

// GetRAM returns an attribute of the word at addr.
func (cpu *Cpu) GetRAM(addr int, name string) (value string, err error) {
	err = cpu.validateAccess(addr)
	if err != nil {
		return
	}
	attr, err := lookupRAM(name)
	if err != nil {
		return
	}

	value = attr.Value(attr.Extract(cpu.Memory[addr]))
	return
}

// SetRAM replaces an attribute of the word at addr, preserving all
// bits outside of the attribute's field.
func (cpu *Cpu) SetRAM(addr int, name string, value string) (err error) {
	err = cpu.validateAccess(addr)
	if err != nil {
		return
	}
	attr, err := lookupRAM(name)
	if err != nil {
		return
	}

	field, ok, err := attr.Field(value)
	if err != nil {
		return
	}
	if !ok {
		err = newError(ERR_INVALID_ATTRIBUTE_VALUE, "the value %v is not valid for attribute %v", value, attr)
		return
	}

	cpu.Memory[addr] = attr.Insert(cpu.Memory[addr], field)
	return
}

// lookupCPU resolves a register and attribute name pair.
func lookupCPU(register string, name string) (reg Register, attr Attribute, err error) {
	reg, ok := LookupRegister(register)
	if !ok {
		err = newError(ERR_INVALID_REGISTER, "register %v is not part of the IAS architecture", register)
		return
	}
	if reg == REG_CTRL {
		return
	}

	attr, ok = LookupAttribute(name)
	if !ok || !attr.AppliesTo(reg) {
		err = newError(ERR_INVALID_CPU_REGISTER_ATTRIBUTE, "the attribute %v is not valid for the register %v", name, reg)
		return
	}
	return
}

// halfView returns a single-field register positioned as a right
// instruction field: IR holds only an opcode, the others a whole field.
func halfView(reg Register, raw Word) Word {
	if reg == REG_IR {
		return raw << ADDR_BITS
	}
	return raw
}

// halfRaw reverses halfView, reporting whether the view was representable.
func halfRaw(reg Register, view Word) (raw Word, ok bool) {
	if reg == REG_IR {
		raw = view >> ADDR_BITS
	} else {
		raw = view
	}
	raw &= Word(1)<<reg.Width() - 1
	ok = halfView(reg, raw) == view
	return
}

// singleField is true for registers that hold one field, not a packed pair.
func singleField(reg Register) bool {
	return reg == REG_PC || reg == REG_MAR || reg == REG_IR || reg == REG_IBR
}

// view returns the word seen by attributes of a register. Single field
// registers appear in both halves so left and right views agree.
func (cpu *Cpu) view(reg Register) Word {
	raw := *cpu.ref(reg)
	if singleField(reg) {
		half := halfView(reg, raw)
		return MakeWord(half, half)
	}
	return raw
}

// GetCPU returns an attribute of a register. CTRL has no bitfields; its
// value is the control state name whatever the attribute.
func (cpu *Cpu) GetCPU(register string, name string) (value string, err error) {
	reg, attr, err := lookupCPU(register, name)
	if err != nil {
		return
	}
	if reg == REG_CTRL {
		value = cpu.Ctrl.String()
		return
	}

	value = attr.Value(attr.Extract(cpu.view(reg)))
	return
}

// SetCPU replaces an attribute of a register. For CTRL the value must be
// a control state name, and replaces the state wholesale.
func (cpu *Cpu) SetCPU(register string, name string, value string) (err error) {
	reg, attr, err := lookupCPU(register, name)
	if err != nil {
		return
	}
	if reg == REG_CTRL {
		ctrl, ok := LookupCtrl(value)
		if !ok {
			err = newError(ERR_INVALID_CPU_STATE, "an invalid CPU state %v was specified", value)
			return
		}
		cpu.Ctrl = ctrl
		return
	}

	invalid := func() error {
		return newError(ERR_INVALID_CPU_ATTRIBUTE_VALUE, "the value %v is not valid for attribute %v of register %v", value, name, reg)
	}

	field, ok, err := attr.Field(value)
	if err != nil {
		return
	}
	if !ok {
		return invalid()
	}

	ptr := cpu.ref(reg)
	if !singleField(reg) {
		*ptr = attr.Insert(*ptr, field)
		return
	}

	// Single field registers are written through their right-hand view.
	attr = attr.twin()
	raw, ok := halfRaw(reg, attr.Insert(halfView(reg, *ptr), field))
	if !ok {
		return invalid()
	}
	*ptr = raw
	return
}
