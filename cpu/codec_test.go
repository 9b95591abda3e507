package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		expect Word
	}){
		{"LOAD M(0x1F)", MakeInstruction(OP_LOAD, 0x1F)},
		{"load m(1f)", MakeInstruction(OP_LOAD, 0x1F)},
		{"LOAD M()", MakeInstruction(OP_LOAD, 0)},
		{"LOAD -M(0x7)", MakeInstruction(OP_LOAD_NEG, 7)},
		{"LOAD |M(0x7)|", MakeInstruction(OP_LOAD_ABS, 7)},
		{"ADD |M(0x8)|", MakeInstruction(OP_ADD_ABS, 8)},
		{"LOAD MQ", MakeInstruction(OP_LOAD_MQ, 0)},
		{"LOAD MQ,M(0x10)", MakeInstruction(OP_LOAD_MQ_M, 0x10)},
		{"  JUMP+  M( 0x3FF , 20:39 ) ", MakeInstruction(OP_JUMPP_RIGHT, 0x3FF)},
		{"JUMP M(0X2A,0:19)", MakeInstruction(OP_JUMP_LEFT, 0x2A)},
		{"STOR M(0x2,8:19)", MakeInstruction(OP_STOR_LEFT, 2)},
		{"STOR M(0x2,28:39)", MakeInstruction(OP_STOR_RIGHT, 2)},
		{"STOR M(0x2)", MakeInstruction(OP_STOR, 2)},
		{"lsh", MakeInstruction(OP_LSH, 0)},
		{"R S H", MakeInstruction(OP_RSH, 0)},
	}

	for _, entry := range table {
		field, err := EncodeInstruction(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.expect, field, entry.text)
	}
}

func TestEncodeInstructionErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		err  error
	}){
		{"", ErrInvalidInstructionString},
		{"FROB M(0x1)", ErrInvalidInstructionString},
		{"LOAD M(0xZZ)", ErrInvalidInstructionString},
		{"LOAD M(0x1", ErrInvalidInstructionString},
		{"LSH M(0x1)", ErrInvalidInstructionString},
		{"JUMP M(0x1,1:2)", ErrInvalidInstructionString},
		{"LOAD M(0x400)", ErrInvalidInstructionAddress},
		{"ADD M(FFFFFFFFFFFFFFFFFFFF)", ErrInvalidInstructionAddress},
	}

	for _, entry := range table {
		_, err := EncodeInstruction(entry.text)
		assert.ErrorIs(err, entry.err, entry.text)
	}
}

func TestDecodeInstruction(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ADD M(0x1F)", DecodeInstruction(MakeInstruction(OP_ADD, 0x1F)))
	assert.Equal("JUMP+ M(0x3FF,20:39)", DecodeInstruction(MakeInstruction(OP_JUMPP_RIGHT, 0x3FF)))
	assert.Equal("LSH", DecodeInstruction(MakeInstruction(OP_LSH, 0x5)))
	assert.Equal("LOAD M(0x0)", DecodeInstruction(MakeInstruction(OP_LOAD, 0)))
	assert.Equal(BLANK_INSTRUCTION, DecodeInstruction(0))
	assert.Equal(BLANK_INSTRUCTION, DecodeInstruction(MakeInstruction(0xFF, 0x12)))
	assert.Len(BLANK_INSTRUCTION, 20)
}

func TestInstructionRoundTrip(t *testing.T) {
	assert := assert.New(t)

	ops := Opcodes()
	assert.Len(ops, 20)

	for _, op := range ops {
		addr := Word(0)
		if op.Addressed() {
			addr = 0x3AB
		}
		field := MakeInstruction(op, addr)
		text := DecodeInstruction(field)
		decoded, err := EncodeInstruction(text)
		assert.NoError(err, text)
		assert.Equal(field, decoded, text)
	}
}
