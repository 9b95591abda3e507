package cpu

import (
	"fmt"
)

// Word geometry.
const (
	WORD_BITS    = 40                   // Bits in a memory word.
	HALF_BITS    = 20                   // Bits in an instruction (half word).
	OPCODE_BITS  = 8                    // Bits in an opcode field.
	ADDR_BITS    = 12                   // Bits in an address field.
	WORD_MODULUS = Word(1) << WORD_BITS // 2^40
	WORD_MASK    = WORD_MODULUS - 1     // All 40 bits set.
	WORD_SIGN    = Word(1) << (WORD_BITS - 1)
	HALF_MASK    = Word(1)<<HALF_BITS - 1
)

// Word is a 40-bit IAS memory or register word, held in the low bits
// of a uint64.
type Word uint64

// SelectBits returns the width-bit run of value starting at bit lsb,
// where bit 0 is the least significant.
//
// The window must lie inside the 40-bit word; anything else is a
// programming error and panics.
func SelectBits(value Word, lsb, width uint) Word {
	checkWindow(lsb, width)
	return (value >> lsb) & (Word(1)<<width - 1)
}

// SpliceBits replaces the width-bit run of value starting at bit lsb with
// field, leaving every other bit of value untouched.
func SpliceBits(value Word, lsb, width uint, field Word) Word {
	checkWindow(lsb, width)
	mask := (Word(1)<<width - 1) << lsb
	return (value &^ mask) | ((field << lsb) & mask)
}

func checkWindow(lsb, width uint) {
	if lsb+width > WORD_BITS {
		panic(fmt.Sprintf("bit window %d:%d outside of %d-bit word", lsb, width, WORD_BITS))
	}
}

// MakeWord packs a left and right instruction field into a word.
func MakeWord(left, right Word) Word {
	return (left&HALF_MASK)<<HALF_BITS | (right & HALF_MASK)
}

// MakeInstruction packs an opcode and address into a 20-bit instruction field.
func MakeInstruction(opcode Opcode, addr Word) Word {
	return Word(opcode)<<ADDR_BITS | SelectBits(addr, 0, ADDR_BITS)
}

// Left returns the left instruction field (bits 20-39).
func (w Word) Left() Word {
	return SelectBits(w, HALF_BITS, HALF_BITS)
}

// Right returns the right instruction field (bits 0-19).
func (w Word) Right() Word {
	return SelectBits(w, 0, HALF_BITS)
}

// Negative is true when the sign bit (bit 39) is set.
func (w Word) Negative() bool {
	return w&WORD_SIGN != 0
}

// Negate returns the two's complement of the word, modulo 2^40.
func (w Word) Negate() Word {
	return (WORD_MODULUS - (w & WORD_MASK)) & WORD_MASK
}

// Abs returns the magnitude of the word interpreted as two's complement.
func (w Word) Abs() Word {
	if w.Negative() {
		return w.Negate()
	}
	return w & WORD_MASK
}

// Int64 interprets the word as a 40-bit two's complement value.
func (w Word) Int64() int64 {
	if w.Negative() {
		return -int64(w.Negate())
	}
	return int64(w & WORD_MASK)
}

// WordFromInt64 converts a signed value into its 40-bit two's complement form.
// Values in [2^39, 2^40) are taken as already-encoded raw words.
func WordFromInt64(value int64) (w Word, ok bool) {
	if value < -int64(WORD_SIGN) || value >= int64(WORD_MODULUS) {
		return
	}
	if value < 0 {
		w = Word(-value).Negate()
	} else {
		w = Word(value)
	}
	ok = true
	return
}

// Add returns (w + v) mod 2^40.
func (w Word) Add(v Word) Word {
	return (w + v) & WORD_MASK
}

// Sub returns (w - v) mod 2^40.
func (w Word) Sub(v Word) Word {
	return (w + WORD_MODULUS - (v & WORD_MASK)) & WORD_MASK
}
