package cpu

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// BLANK_INSTRUCTION is the text of an instruction field whose opcode is
// undefined.
const BLANK_INSTRUCTION = "                    "

// addrPattern captures an optional, optionally 0x-prefixed, hex address.
const addrPattern = `(?:(?:0[xX])?([0-9A-Fa-f]+))?`

type instructionPattern struct {
	opcode Opcode
	re     *regexp.Regexp
}

// instructionPatterns are anchored, case-insensitive patterns for each
// defined instruction, matched against whitespace-free text.
var instructionPatterns = buildPatterns()

func buildPatterns() (patterns []instructionPattern) {
	for _, op := range Opcodes() {
		template := stripSpace(op.Mnemonic())
		pattern := regexp.QuoteMeta(template)
		if before, after, ok := strings.Cut(template, ADDR_PLACEHOLDER); ok {
			pattern = regexp.QuoteMeta(before) + addrPattern + regexp.QuoteMeta(after)
		}
		patterns = append(patterns, instructionPattern{
			opcode: op,
			re:     regexp.MustCompile(`(?i)^` + pattern + `$`),
		})
	}
	return
}

// stripSpace removes all whitespace from text.
func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// EncodeInstruction converts instruction text, such as "ADD M(0x1F)",
// into a 20-bit instruction field. Whitespace and case are ignored, and an
// omitted address encodes as zero.
func EncodeInstruction(text string) (field Word, err error) {
	stripped := stripSpace(text)

	for _, pattern := range instructionPatterns {
		match := pattern.re.FindStringSubmatch(stripped)
		if match == nil {
			continue
		}

		var addr uint64
		if len(match) > 1 && len(match[1]) > 0 {
			addr, err = strconv.ParseUint(match[1], 16, 64)
			if err != nil || addr >= RAM_SIZE {
				err = newError(ERR_INVALID_INSTRUCTION_ADDRESS, "%v is an instruction with an invalid address", text)
				return
			}
		}

		field = MakeInstruction(pattern.opcode, Word(addr))
		return
	}

	err = newError(ERR_INVALID_INSTRUCTION_STRING, "%v is not a valid IAS instruction", text)
	return
}

// DecodeInstruction converts a 20-bit instruction field into its text.
// Fields with an undefined opcode decode as BLANK_INSTRUCTION.
func DecodeInstruction(field Word) string {
	op := Opcode(SelectBits(field, ADDR_BITS, OPCODE_BITS))
	if !op.Defined() {
		return BLANK_INSTRUCTION
	}

	addr := SelectBits(field, 0, ADDR_BITS)
	return strings.Replace(op.Mnemonic(), ADDR_PLACEHOLDER, "0x"+strings.ToUpper(strconv.FormatUint(uint64(addr), 16)), 1)
}
