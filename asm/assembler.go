// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is a single pass assembler for IAS machine programs.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ias/cpu"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	// labelName is a label or equate name. Numbers start with a digit.
	labelName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// parenExpr is a $(...) expression, allowing one level of nested parens.
	parenExpr = regexp.MustCompile(`\$\(((?:[^()]|\([^()]*\))*)\)`)

	// operandPattern captures the address operand of an instruction.
	operandPattern = regexp.MustCompile(`\(([^,()]*)`)
)

// Line is a single assembled source line.
type Line struct {
	LineNo    int      // Source line number.
	Address   int      // Word address.
	Right     bool     // Placed in the right half of the word.
	Words     []string // Source words.
	Data      bool     // If set, Value is a whole data word.
	Value     cpu.Word // Instruction field, or data word.
	LinkLabel string   // Label to link into the address field.
}

// Assembler is a single pass assembler for the IAS machine.
//
// Instructions use the mnemonic syntax of cpu.EncodeInstruction. The
// address operand may also be a label, an equate, or a $(...) expression.
// Two instructions pack into each word, left half first.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of assembled lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to word addresses.
	Equate    map[string]string // Map of equates.

	pending []string // Labels waiting for the next placed line.
	addr    int      // Current word address.
	right   bool     // Set when the right half of the current word is next.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// PredefineAll predefines every equate in the sequence.
func (asm *Assembler) PredefineAll(defines iter.Seq2[string, string]) {
	for equ, value := range defines {
		asm.Predefine(equ, value)
	}
}

// valueOf returns the value of a number or equate.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	return
}

// operandOf resolves an instruction address operand. Equates and defined
// labels resolve immediately, other names are linked after the final
// line. Numbers are in hex, as in instruction text.
func (asm *Assembler) operandOf(token string) (addr int64, link string, err error) {
	equate, is_equate := asm.Equate[token]
	switch {
	case is_equate:
		addr, err = asm.valueOf(equate)
		if err != nil {
			return
		}
	case labelName.MatchString(token):
		label, ok := asm.Label[token]
		if ok {
			addr = int64(label)
		} else {
			link = token
		}
		return
	default:
		hex := strings.TrimPrefix(strings.TrimPrefix(token, "0x"), "0X")
		var value uint64
		value, err = strconv.ParseUint(hex, 16, 32)
		if err != nil {
			err = ErrParseNumber(token)
			return
		}
		addr = int64(value)
	}

	if addr < 0 {
		err = ErrParseNumber(token)
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a line, and handles equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	line = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 || !labelName.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if !labelName.MatchString(label) {
			err = ErrLabelSyntax
			return
		}
		_, ok := asm.Label[label]
		if ok || slices.Contains(asm.pending, label) {
			err = ErrLabelDuplicate
			return
		}
		asm.pending = append(asm.pending, label)
		words = words[1:]
	}

	return
}

// align closes a word whose right half is still open.
func (asm *Assembler) align() {
	if asm.right {
		asm.addr++
		asm.right = false
	}
}

// place puts a line at the current location, and binds pending labels to it.
func (asm *Assembler) place(line Line) (err error) {
	if asm.addr >= cpu.RAM_SIZE {
		err = ErrProgramOverflow
		return
	}

	line.Address = asm.addr
	line.Right = asm.right

	for _, label := range asm.pending {
		asm.Label[label] = asm.addr
	}
	asm.pending = asm.pending[:0]

	if asm.Verbose {
		side := "L"
		if line.Right {
			side = "R"
		}
		log.Printf("asm: %03X%v %v", line.Address, side, strings.Join(line.Words, " "))
	}

	asm.Lines = append(asm.Lines, line)

	if line.Data || asm.right {
		asm.addr++
		asm.right = false
	} else {
		asm.right = true
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".org":
		if len(words) != 2 {
			err = ErrDirectiveSyntax
			return
		}
		var value int64
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if value < 0 || value >= cpu.RAM_SIZE {
			err = ErrOrgInvalid
			return
		}
		asm.addr = int(value)
		asm.right = false
		return
	case ".align":
		if len(words) != 1 {
			err = ErrDirectiveSyntax
			return
		}
		asm.align()
		return
	case ".word":
		if len(words) != 2 {
			err = ErrDirectiveSyntax
			return
		}
		asm.align()
		line := Line{LineNo: lineno, Words: words, Data: true}
		_, is_equate := asm.Equate[words[1]]
		if !is_equate && labelName.MatchString(words[1]) {
			addr, ok := asm.Label[words[1]]
			if ok {
				line.Value = cpu.Word(addr)
			} else {
				line.LinkLabel = words[1]
			}
		} else {
			var value int64
			value, err = asm.valueOf(words[1])
			if err != nil {
				return
			}
			word, ok := cpu.WordFromInt64(value)
			if !ok {
				err = ErrParseNumber(words[1])
				return
			}
			line.Value = word
		}
		err = asm.place(line)
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = ErrDirectiveInvalid
		return
	}

	text := strings.Join(words, " ")
	line := Line{LineNo: lineno, Words: words}

	loc := operandPattern.FindStringSubmatchIndex(text)
	if loc != nil {
		token := strings.TrimSpace(text[loc[2]:loc[3]])
		if len(token) > 0 {
			var addr int64
			addr, line.LinkLabel, err = asm.operandOf(token)
			if err != nil {
				return
			}
			text = text[:loc[2]] + fmt.Sprintf("0x%X", addr) + text[loc[3]:]
		}
	}

	line.Value, err = cpu.EncodeInstruction(text)
	if err != nil {
		return
	}

	err = asm.place(line)
	return
}

// Parse parses an input stream into a Program containing memory words.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Lines = asm.Lines[:0]
	asm.Label = make(map[string]int, 16)
	asm.pending = asm.pending[:0]
	asm.addr = 0
	asm.right = false
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Trailing labels mark the end of the program.
	for _, label := range asm.pending {
		asm.Label[label] = asm.addr
	}
	asm.pending = asm.pending[:0]

	// Final linking of labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		addr, ok := asm.Label[label]
		if !ok {
			lineno, line = op.LineNo, strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		if addr >= cpu.RAM_SIZE {
			lineno, line = op.LineNo, strings.Join(op.Words, " ")
			err = ErrProgramOverflow
			return
		}
		if op.Data {
			op.Value = cpu.Word(addr)
		} else {
			op.Value = cpu.SpliceBits(op.Value, 0, cpu.ADDR_BITS, cpu.Word(addr))
		}
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
		Words: map[int]cpu.Word{},
	}
	for _, op := range prog.Lines {
		prog.set(op)
	}

	return
}
