package asm

import (
	"errors"

	"github.com/ezrec/ias/translate"
)

var f = translate.From

var (
	ErrEquateSyntax     = errors.New(f(".equ syntax"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
	ErrLabelSyntax      = errors.New(f("label syntax"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrOrgInvalid       = errors.New(f(".org address invalid"))
	ErrDirectiveSyntax  = errors.New(f("directive syntax"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrProgramOverflow  = errors.New(f("program exceeds memory"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
