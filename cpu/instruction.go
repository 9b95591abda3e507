package cpu

// Instruction effects. Every effect that can fail checks before it
// mutates, so a failed instruction leaves the machine untouched.

// operand validates MAR and returns the memory word it addresses.
func (cpu *Cpu) operand() (value Word, err error) {
	err = cpu.validateAccess(int(cpu.MAR))
	if err != nil {
		return
	}
	value = cpu.Memory[cpu.MAR]
	return
}

// loadMBR loads MBR from the word addressed by MAR.
func (cpu *Cpu) loadMBR() (err error) {
	value, err := cpu.operand()
	if err != nil {
		return
	}
	cpu.MBR = value
	return
}

func (cpu *Cpu) opLoad() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.MBR
	return
}

func (cpu *Cpu) opLoadNeg() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.MBR.Negate()
	return
}

func (cpu *Cpu) opLoadAbs() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.MBR.Abs()
	return
}

func (cpu *Cpu) opAdd() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.AC.Add(cpu.MBR)
	return
}

func (cpu *Cpu) opSub() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.AC.Sub(cpu.MBR)
	return
}

func (cpu *Cpu) opAddAbs() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.AC.Add(cpu.MBR.Abs())
	return
}

func (cpu *Cpu) opSubAbs() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC = cpu.AC.Sub(cpu.MBR.Abs())
	return
}

func (cpu *Cpu) opLoadMqM() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.MQ = cpu.MBR
	return
}

func (cpu *Cpu) opLoadMq() (err error) {
	cpu.AC = cpu.MQ
	return
}

// opMul computes AC:MQ <- MQ * M(X), signed.
func (cpu *Cpu) opMul() (err error) {
	err = cpu.loadMBR()
	if err != nil {
		return
	}
	cpu.AC, cpu.MQ = Multiply(cpu.MQ, cpu.MBR)
	return
}

// opDiv computes MQ <- AC / M(X), AC <- AC % M(X), signed.
func (cpu *Cpu) opDiv() (err error) {
	divisor, err := cpu.operand()
	if err != nil {
		return
	}
	if divisor == 0 {
		err = newError(ERR_ARITHMETIC_EXCEPTION, "attempt to divide by zero from value at address 0x%X", uint64(cpu.MAR))
		return
	}
	cpu.MBR = divisor
	cpu.MQ, cpu.AC = Divide(cpu.AC, cpu.MBR)
	return
}

func (cpu *Cpu) jump(ctrl Ctrl) {
	cpu.PC = cpu.MAR
	cpu.Ctrl = ctrl
}

func (cpu *Cpu) opJumpLeft() (err error) {
	cpu.jump(CTRL_LEFT_FETCH)
	return
}

func (cpu *Cpu) opJumpRight() (err error) {
	cpu.jump(CTRL_RIGHT_FETCH_RAM)
	return
}

func (cpu *Cpu) opJumpPlusLeft() (err error) {
	if !cpu.AC.Negative() {
		cpu.jump(CTRL_LEFT_FETCH)
	}
	return
}

func (cpu *Cpu) opJumpPlusRight() (err error) {
	if !cpu.AC.Negative() {
		cpu.jump(CTRL_RIGHT_FETCH_RAM)
	}
	return
}

// opStorLeft replaces the left address field (bits 20-31) of M(X).
func (cpu *Cpu) opStorLeft() (err error) {
	value, err := cpu.operand()
	if err != nil {
		return
	}
	field := SelectBits(cpu.AC, HALF_BITS, ADDR_BITS)
	cpu.MBR = field << HALF_BITS
	cpu.Memory[cpu.MAR] = SpliceBits(value, HALF_BITS, ADDR_BITS, field)
	return
}

// opStorRight replaces the right address field (bits 0-11) of M(X).
func (cpu *Cpu) opStorRight() (err error) {
	value, err := cpu.operand()
	if err != nil {
		return
	}
	field := SelectBits(cpu.AC, 0, ADDR_BITS)
	cpu.MBR = field
	cpu.Memory[cpu.MAR] = SpliceBits(value, 0, ADDR_BITS, field)
	return
}

func (cpu *Cpu) opLsh() (err error) {
	cpu.AC = (cpu.AC << 1) & WORD_MASK
	return
}

// opRsh is a logical shift; the sign bit is not replicated.
func (cpu *Cpu) opRsh() (err error) {
	cpu.AC >>= 1
	return
}

func (cpu *Cpu) opStor() (err error) {
	_, err = cpu.operand()
	if err != nil {
		return
	}
	cpu.MBR = cpu.AC
	cpu.Memory[cpu.MAR] = cpu.MBR
	return
}

// Multiply returns the signed 80-bit product of two 40-bit two's complement
// words as its upper (hi) and lower (lo) 40 bits.
//
// The product is formed on magnitudes from four 20x20 partial products.
// A negative product is converted to two's complement across the pair by
// decrementing with borrow, then complementing both halves.
func Multiply(a, b Word) (hi, lo Word) {
	if a == 0 || b == 0 {
		return
	}

	negative := a.Negative() != b.Negative()
	a = a.Abs()
	b = b.Abs()

	ah, al := a.Left(), a.Right()
	bh, bl := b.Left(), b.Right()

	hi = ah * bh
	lo = al * bl
	cross_a := ah * bl
	cross_b := bh * al
	hi += SelectBits(cross_a, HALF_BITS, HALF_BITS) + SelectBits(cross_b, HALF_BITS, HALF_BITS)
	lo += (SelectBits(cross_a, 0, HALF_BITS) + SelectBits(cross_b, 0, HALF_BITS)) << HALF_BITS

	// Carry out of the low word.
	hi += lo >> WORD_BITS
	lo &= WORD_MASK

	if negative {
		if lo != 0 {
			lo--
		} else {
			hi--
			lo = WORD_MASK
		}
		hi = ^hi & WORD_MASK
		lo = ^lo & WORD_MASK
	}

	return
}

// Divide returns the signed quotient and remainder of two 40-bit two's
// complement words. The quotient truncates toward zero and the remainder
// takes the sign of the dividend. The divisor must not be zero.
func Divide(dividend, divisor Word) (quotient, remainder Word) {
	n := dividend.Abs()
	d := divisor.Abs()

	quotient = n / d
	remainder = n % d

	if dividend.Negative() != divisor.Negative() {
		quotient = quotient.Negate()
	}
	if dividend.Negative() {
		remainder = remainder.Negate()
	}

	return
}
