package emulator

import (
	"errors"

	"github.com/ezrec/ias/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address int  // Word address of the failing instruction.
	Right   bool // Set if the instruction is in the right half.
	LineNo  int  // Source line, if known.
	Err     error
}

func (err *ErrRuntime) Error() string {
	side := "L"
	if err.Right {
		side = "R"
	}
	if err.LineNo == 0 {
		return f("%03X%v %v", err.Address, side, err.Err)
	}
	return f("%03X%v line %d %v", err.Address, side, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
