package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRAM(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Memory[0x10] = MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_STOR, 0x6))

	table := map[string]string{
		"leftopcode":           "1",
		"leftopcodehex":        "1",
		"leftopcodetext":       "LOAD M(X)",
		"leftaddr":             "5",
		"leftaddrhex":          "5",
		"leftinstruction":      "4101",
		"leftinstructionhex":   "1005",
		"leftinstructiontext":  "LOAD M(0x5)",
		"rightopcode":          "33",
		"rightopcodehex":       "21",
		"rightopcodetext":      "STOR M(X)",
		"rightaddr":            "6",
		"rightaddrhex":         "6",
		"rightinstruction":     "135174",
		"rightinstructionhex":  "21006",
		"rightinstructiontext": "STOR M(0x6)",
		"wordvalue":            "4300345350",
		"wordvaluehex":         "100521006",
		"WordValueHex":         "100521006",
	}

	for name, expect := range table {
		value, err := cpu.GetRAM(0x10, name)
		assert.NoError(err, name)
		assert.Equal(expect, value, name)
	}

	cpu.Memory[0x11] = WORD_MASK
	value, err := cpu.GetRAM(0x11, "wordvalue")
	assert.NoError(err)
	assert.Equal("-1", value)

	value, err = cpu.GetRAM(0x11, "leftopcodetext")
	assert.NoError(err)
	assert.Equal(BLANK_INSTRUCTION, value)

	value, err = cpu.GetRAM(0x11, "rightinstructiontext")
	assert.NoError(err)
	assert.Equal(BLANK_INSTRUCTION, value)
}

func TestSetRAM(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	word := MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_STOR, 0x6))

	table := [](struct {
		name   string
		value  string
		expect Word
	}){
		{"leftopcode", "5", MakeWord(MakeInstruction(OP_ADD, 0x5), MakeInstruction(OP_STOR, 0x6))},
		{"leftopcodehex", "0x0B", MakeWord(MakeInstruction(OP_MUL, 0x5), MakeInstruction(OP_STOR, 0x6))},
		{"rightopcodetext", "lsh", MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_LSH, 0x6))},
		{"leftaddrhex", "3ff", MakeWord(MakeInstruction(OP_LOAD, 0x3FF), MakeInstruction(OP_STOR, 0x6))},
		{"rightaddr", "4095", MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_STOR, 0xFFF))},
		{"rightinstructiontext", "JUMP+ M(0x20,0:19)", MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_JUMPP_LEFT, 0x20))},
		{"leftinstructionhex", "0", MakeWord(0, MakeInstruction(OP_STOR, 0x6))},
		{"wordvalue", "-2", WORD_MASK - 1},
		{"wordvaluehex", "FFFFFFFFFF", WORD_MASK},
	}

	for _, entry := range table {
		cpu.Memory[0x3FF] = word
		err := cpu.SetRAM(0x3FF, entry.name, entry.value)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expect, cpu.Memory[0x3FF], entry.name)
	}
}

func TestRAMErrors(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Memory[5] = 0x1234

	table := [](struct {
		addr  int
		name  string
		value string
		err   error
	}){
		{-1, "wordvalue", "0", ErrInvalidAccess},
		{RAM_SIZE, "wordvalue", "0", ErrInvalidAccess},
		{5, "bogus", "0", ErrInvalidMemoryAttribute},
		{5, "leftopcode", "4", ErrInvalidAttributeValue},
		{5, "leftopcode", "256", ErrInvalidAttributeValue},
		{5, "leftopcodetext", "FROB", ErrInvalidAttributeValue},
		{5, "rightaddr", "4096", ErrInvalidAttributeValue},
		{5, "rightaddr", "-1", ErrInvalidAttributeValue},
		{5, "rightaddrhex", "xyz", ErrInvalidAttributeValue},
		{5, "wordvalue", "1099511627776", ErrInvalidAttributeValue},
		{5, "wordvalue", "-549755813889", ErrInvalidAttributeValue},
		{5, "wordvaluehex", "10000000000", ErrInvalidAttributeValue},
		{5, "leftinstructiontext", "FROB M(0x1)", ErrInvalidInstructionString},
		{5, "leftinstructiontext", "LOAD M(0x400)", ErrInvalidInstructionAddress},
	}

	for _, entry := range table {
		err := cpu.SetRAM(entry.addr, entry.name, entry.value)
		assert.ErrorIs(err, entry.err, "%v=%v", entry.name, entry.value)
		assert.Equal(Word(0x1234), cpu.Memory[5], "%v=%v", entry.name, entry.value)
	}

	_, err := cpu.GetRAM(RAM_SIZE, "wordvalue")
	assert.ErrorIs(err, ErrInvalidAccess)

	_, err = cpu.GetRAM(5, "ctrl")
	assert.ErrorIs(err, ErrInvalidMemoryAttribute)
}

func TestAttributeOrthogonal(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	for _, attr := range Attributes() {
		if attr.Format() != FORMAT_DECIMAL || descriptors[attr].validate != nil {
			continue
		}
		width := descriptors[attr].width
		for _, base := range []Word{0, WORD_MASK, 0x5A5A5A5A5A} {
			cpu.Memory[0] = base
			all := Word(1)<<width - 1
			err := cpu.SetRAM(0, attr.String(), attr.Value(all))
			if !assert.NoError(err, attr.String()) {
				continue
			}
			assert.Equal(attr.Insert(base, all), cpu.Memory[0], attr.String())
			outside := ^((all) << descriptors[attr].lsb) & WORD_MASK
			assert.Equal(base&outside, cpu.Memory[0]&outside, attr.String())
		}
	}
}

func TestAttributeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	words := []Word{
		MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_STOR, 0x6)),
		MakeWord(MakeInstruction(OP_JUMPP_RIGHT, 0x3FF), MakeInstruction(OP_LOAD_MQ, 0)),
		MakeWord(MakeInstruction(OP_DIV, 0x200), MakeInstruction(OP_SUB_ABS, 0x001)),
	}

	for _, word := range words {
		for _, attr := range Attributes() {
			cpu.Memory[7] = word
			value, err := cpu.GetRAM(7, attr.String())
			assert.NoError(err, attr.String())
			err = cpu.SetRAM(7, attr.String(), value)
			assert.NoError(err, "%v=%v", attr, value)
			assert.Equal(word, cpu.Memory[7], "%v=%v", attr, value)
		}
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.PC = 0x123
	cpu.MAR = 0x3FF
	cpu.IR = Word(OP_DIV)
	cpu.IBR = MakeInstruction(OP_JUMP_LEFT, 0x10)
	cpu.MBR = MakeWord(MakeInstruction(OP_LOAD, 0x5), MakeInstruction(OP_STOR, 0x6))
	cpu.AC = MakeWord(MakeInstruction(OP_SUB, 0x3FF), MakeInstruction(OP_RSH, 0))
	cpu.MQ = MakeWord(MakeInstruction(OP_STOR_LEFT, 0x1), MakeInstruction(OP_LOAD_MQ_M, 0x2))

	before := cpu.Registers

	for reg := REG_PC; reg < REG_CTRL; reg++ {
		for _, attr := range Attributes() {
			if !attr.AppliesTo(reg) {
				continue
			}
			value, err := cpu.GetCPU(reg.String(), attr.String())
			assert.NoError(err, "%v.%v", reg, attr)
			if value == BLANK_INSTRUCTION {
				continue
			}
			err = cpu.SetCPU(reg.String(), attr.String(), value)
			assert.NoError(err, "%v.%v=%v", reg, attr, value)
			assert.Equal(before, cpu.Registers, "%v.%v=%v", reg, attr, value)
		}
	}
}

func TestRegisterViews(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.PC = 0x123
	cpu.IR = Word(OP_DIV)
	cpu.IBR = MakeInstruction(OP_JUMP_LEFT, 0x10)
	cpu.AC = WORD_SIGN

	table := [](struct {
		reg    string
		attr   string
		expect string
	}){
		{"PC", "leftaddr", "291"},
		{"pc", "rightaddrhex", "123"},
		{"ir", "rightopcode", "12"},
		{"ir", "leftopcodetext", "DIV M(X)"},
		{"ir", "rightinstructiontext", "DIV M(0x0)"},
		{"ibr", "leftinstructiontext", "JUMP M(0x10,0:19)"},
		{"ibr", "rightopcodehex", "D"},
		{"ac", "wordvalue", "-549755813888"},
		{"ac", "wordvaluehex", "8000000000"},
		{"mq", "wordvalue", "0"},
	}

	for _, entry := range table {
		value, err := cpu.GetCPU(entry.reg, entry.attr)
		assert.NoError(err, "%v.%v", entry.reg, entry.attr)
		assert.Equal(entry.expect, value, "%v.%v", entry.reg, entry.attr)
	}

	assert.NoError(cpu.SetCPU("pc", "leftaddrhex", "3ff"))
	assert.Equal(Word(0x3FF), cpu.PC)

	assert.NoError(cpu.SetCPU("ir", "leftopcodetext", "RSH"))
	assert.Equal(Word(OP_RSH), cpu.IR)

	assert.NoError(cpu.SetCPU("ibr", "rightinstructiontext", "ADD M(0x2)"))
	assert.Equal(MakeInstruction(OP_ADD, 2), cpu.IBR)

	assert.NoError(cpu.SetCPU("ac", "leftopcode", "1"))
	assert.Equal(Word(0x0100000000), cpu.AC)

	assert.NoError(cpu.SetCPU("mq", "wordvalue", "-1"))
	assert.Equal(WORD_MASK, cpu.MQ)
}

func TestRegisterErrors(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.IR = Word(OP_ADD)
	cpu.PC = 0x10

	table := [](struct {
		reg   string
		attr  string
		value string
		err   error
	}){
		{"xr", "wordvalue", "0", ErrInvalidRegister},
		{"pc", "wordvalue", "0", ErrInvalidCPURegisterAttribute},
		{"pc", "leftopcode", "1", ErrInvalidCPURegisterAttribute},
		{"mar", "rightopcodetext", "LSH", ErrInvalidCPURegisterAttribute},
		{"ir", "rightaddr", "0", ErrInvalidCPURegisterAttribute},
		{"ibr", "wordvaluehex", "0", ErrInvalidCPURegisterAttribute},
		{"ac", "bogus", "0", ErrInvalidCPURegisterAttribute},
		{"ir", "rightopcode", "4", ErrInvalidCPUAttributeValue},
		{"ir", "rightinstruction", "4097", ErrInvalidCPUAttributeValue},
		{"pc", "rightinstructionhex", "1000", ErrInvalidCPUAttributeValue},
		{"pc", "rightaddr", "4096", ErrInvalidCPUAttributeValue},
		{"ac", "wordvalue", "1099511627776", ErrInvalidCPUAttributeValue},
		{"ac", "wordvalue", "ten", ErrInvalidCPUAttributeValue},
		{"mbr", "leftinstructiontext", "NOPE", ErrInvalidInstructionString},
		{"ctrl", "", "bogus", ErrInvalidCPUState},
		{"ctrl", "", "LEFT_FETCH", ErrInvalidCPUState},
	}

	for _, entry := range table {
		err := cpu.SetCPU(entry.reg, entry.attr, entry.value)
		assert.ErrorIs(err, entry.err, "%v.%v=%v", entry.reg, entry.attr, entry.value)
	}

	assert.Equal(Word(OP_ADD), cpu.IR)
	assert.Equal(Word(0x10), cpu.PC)
	assert.Equal(CTRL_LEFT_FETCH, cpu.Ctrl)

	_, err := cpu.GetCPU("xr", "wordvalue")
	assert.ErrorIs(err, ErrInvalidRegister)
	_, err = cpu.GetCPU("mar", "leftopcode")
	assert.ErrorIs(err, ErrInvalidCPURegisterAttribute)
}

func TestCtrl(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	value, err := cpu.GetCPU("ctrl", "wordvalue")
	assert.NoError(err)
	assert.Equal("left_fetch", value)

	for ctrl := CTRL_LEFT_FETCH; ctrl <= CTRL_RIGHT_EXECUTE; ctrl++ {
		assert.NoError(cpu.SetCPU("CTRL", "anything", ctrl.String()))
		assert.Equal(ctrl, cpu.Ctrl)

		value, err = cpu.GetCPU("ctrl", "")
		assert.NoError(err)
		assert.Equal(ctrl.String(), value)
	}

	assert.Equal("right_fetch_RAM", CTRL_RIGHT_FETCH_RAM.String())
}

func TestErrorKind(t *testing.T) {
	assert := assert.New(t)

	err := newError(ERR_INVALID_MAP, "line %d", 3)
	assert.ErrorIs(err, ErrInvalidMap)
	assert.NotErrorIs(err, ErrInvalidNumber)
	assert.Equal("invalidMap: line 3", err.Error())
	assert.Equal("invalidCPURegisterAttribute", ERR_INVALID_CPU_REGISTER_ATTRIBUTE.String())
	assert.Equal("arithmeticException", ErrArithmetic.Error())
}
