package cpu

// validateFetch checks that an instruction can be fetched from addr.
func (cpu *Cpu) validateFetch(addr Word) error {
	if addr >= RAM_SIZE {
		return newError(ERR_INVALID_FETCH, "attempt to fetch an instruction at an invalid address 0x%X", uint64(addr))
	}
	return cpu.validateData(int(addr))
}

// validateAccess checks that data can be read or written at addr.
func (cpu *Cpu) validateAccess(addr int) error {
	if addr < 0 || addr >= RAM_SIZE {
		return newError(ERR_INVALID_ACCESS, "attempt to access data at an invalid address 0x%X", addr)
	}
	return cpu.validateData(addr)
}

// validateData checks that a stored word is in range. The invariants of
// the register file make this unreachable.
func (cpu *Cpu) validateData(addr int) error {
	if cpu.Memory[addr] > WORD_MASK {
		return newError(ERR_INVALID_DATA, "invalid data 0x%X at address 0x%X", uint64(cpu.Memory[addr]), addr)
	}
	return nil
}

// validateNumber checks that an externally supplied value fits in bits.
func validateNumber(value uint64, bits uint) error {
	if bits < 64 && value >= uint64(1)<<bits {
		return newError(ERR_INVALID_NUMBER, "number 0x%X not in range [0, 2^%d)", value, bits)
	}
	return nil
}
