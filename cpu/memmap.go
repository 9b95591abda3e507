package cpu

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// mapLine is a memory map line: an address, then hex digits that may be
// interspersed with whitespace.
var mapLine = regexp.MustCompile(`^\s*([0-9A-Fa-f]+)\s+([0-9A-Fa-f][0-9A-Fa-f\s]*)$`)

// FormatWord returns the memory map line for a word: the address, then the
// left opcode and address fields and the right opcode and address fields,
// in uppercase hex.
func FormatWord(addr int, word Word) string {
	return fmt.Sprintf("%03X\t\t%02X %03X\t%02X %03X\n", addr,
		uint64(ATTR_LEFT_OPCODE.Extract(word)),
		uint64(ATTR_LEFT_ADDR.Extract(word)),
		uint64(ATTR_RIGHT_OPCODE.Extract(word)),
		uint64(ATTR_RIGHT_ADDR.Extract(word)))
}

// WriteRAM writes the memory map of every address, in address order.
func (cpu *Cpu) WriteRAM(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	for addr, word := range cpu.Memory {
		_, err = io.WriteString(out, FormatWord(addr, word))
		if err != nil {
			return
		}
	}
	return out.Flush()
}

// DumpRAM returns the memory map of every address.
func (cpu *Cpu) DumpRAM() string {
	var text strings.Builder
	_ = cpu.WriteRAM(&text)
	return text.String()
}

// ReadRAM loads words from a memory map. Blank lines are skipped, and a
// '#' starts a comment. Each listed word is replaced entirely.
//
// Memory is only modified if every line of the map is valid.
func (cpu *Cpu) ReadRAM(r io.Reader) (err error) {
	staged := cpu.Memory

	scanner := bufio.NewScanner(r)
	var lineno int
	for scanner.Scan() {
		lineno++
		line, _, _ := strings.Cut(scanner.Text(), "#")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		match := mapLine.FindStringSubmatch(line)
		if match == nil {
			err = newError(ERR_INVALID_MAP, "line %d of the memory map is not in the format <address> <number> [#comment]", lineno)
			return
		}

		addr, perr := strconv.ParseUint(match[1], 16, 16)
		if perr != nil || addr >= RAM_SIZE {
			err = newError(ERR_INVALID_ACCESS, "attempt to access data at an invalid address 0x%v on line %d", strings.ToUpper(match[1]), lineno)
			return
		}

		digits := stripSpace(match[2])
		value, perr := strconv.ParseUint(digits, 16, 64)
		if perr != nil {
			err = newError(ERR_INVALID_NUMBER, "number 0x%v on line %d is out of range", strings.ToUpper(digits), lineno)
			return
		}
		err = validateNumber(value, WORD_BITS)
		if err != nil {
			return
		}

		staged[addr] = Word(value)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	cpu.Memory = staged
	return
}

// LoadRAM loads words from memory map text.
func (cpu *Cpu) LoadRAM(text string) error {
	return cpu.ReadRAM(strings.NewReader(text))
}

// DumpCPU returns the control state and every register, in hex, decimal
// and instruction text where applicable.
func (cpu *Cpu) DumpCPU() string {
	get := func(reg, attr string, digits int) string {
		value, err := cpu.GetCPU(reg, attr)
		if err != nil {
			return "?"
		}
		if pad := digits - len(value); pad > 0 {
			value = strings.Repeat("0", pad) + value
		}
		return value
	}

	var text strings.Builder
	text.WriteString("IAS\n")
	fmt.Fprintf(&text, "CTRL: %v\n", get("ctrl", "", 0))
	fmt.Fprintf(&text, "IR: 0x%v\t%v\t%v\n", get("ir", "rightopcodehex", 2), get("ir", "rightopcode", 0), get("ir", "rightopcodetext", 0))
	fmt.Fprintf(&text, "MAR: 0x%v\t%v\n", get("mar", "rightaddrhex", 3), get("mar", "rightaddr", 0))
	fmt.Fprintf(&text, "PC: 0x%v\t%v\n", get("pc", "rightaddrhex", 3), get("pc", "rightaddr", 0))
	fmt.Fprintf(&text, "IBR: 0x%v %v\t%v\n", get("ibr", "rightopcodehex", 2), get("ibr", "rightaddrhex", 3), get("ibr", "rightinstructiontext", 0))
	fmt.Fprintf(&text, "MBR: 0x%v %v %v\t%v %v %v\n",
		get("mbr", "leftopcodehex", 2), get("mbr", "leftaddrhex", 3), get("mbr", "leftinstructiontext", 0),
		get("mbr", "rightopcodehex", 2), get("mbr", "rightaddrhex", 3), get("mbr", "rightinstructiontext", 0))
	fmt.Fprintf(&text, "AC: 0x%v\t%v\n", get("ac", "wordvaluehex", 10), get("ac", "wordvalue", 0))
	fmt.Fprintf(&text, "MQ: 0x%v\t%v\n", get("mq", "wordvaluehex", 10), get("mq", "wordvalue", 0))

	return text.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return cpu.DumpCPU()
}
