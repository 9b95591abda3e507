package cpu

import (
	"github.com/ezrec/ias/translate"
)

var f = translate.From

// ErrorKind is the symbolic kind of a simulator failure.
type ErrorKind int

//go:generate go tool stringer -linecomment -type=ErrorKind
const (
	ERR_INVALID_FETCH                  = ErrorKind(0)  // invalidFetch
	ERR_INVALID_ACCESS                 = ErrorKind(1)  // invalidAccess
	ERR_INVALID_DATA                   = ErrorKind(2)  // invalidData
	ERR_INVALID_NUMBER                 = ErrorKind(3)  // invalidNumber
	ERR_INVALID_INSTRUCTION_STRING     = ErrorKind(4)  // invalidInstructionString
	ERR_INVALID_INSTRUCTION_ADDRESS    = ErrorKind(5)  // invalidInstructionAddress
	ERR_ARITHMETIC_EXCEPTION           = ErrorKind(6)  // arithmeticException
	ERR_INVALID_MEMORY_ATTRIBUTE       = ErrorKind(7)  // invalidMemoryAttribute
	ERR_INVALID_CPU_REGISTER_ATTRIBUTE = ErrorKind(8)  // invalidCPURegisterAttribute
	ERR_INVALID_REGISTER               = ErrorKind(9)  // invalidRegister
	ERR_INVALID_CPU_STATE              = ErrorKind(10) // invalidCPUState
	ERR_INVALID_ATTRIBUTE_VALUE        = ErrorKind(11) // invalidAttributeValue
	ERR_INVALID_CPU_ATTRIBUTE_VALUE    = ErrorKind(12) // invalidCPUAttributeValue
	ERR_INVALID_EXECUTION              = ErrorKind(13) // invalidExecution
	ERR_INVALID_INSTRUCTION            = ErrorKind(14) // invalidInstruction
	ERR_INVALID_MAP                    = ErrorKind(15) // invalidMap
)

// Error is a simulator failure: a symbolic kind plus a descriptive message.
//
// Two errors match under errors.Is when their kinds are equal, so callers
// test against the sentinel values below.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (err *Error) Error() string {
	if len(err.Message) == 0 {
		return err.Kind.String()
	}
	return err.Kind.String() + ": " + err.Message
}

func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == err.Kind
}

// newError builds an error of the given kind with a translated message.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: f(format, args...)}
}

var (
	// Fetch/execute errors
	ErrInvalidFetch       = &Error{Kind: ERR_INVALID_FETCH}
	ErrInvalidExecution   = &Error{Kind: ERR_INVALID_EXECUTION}
	ErrInvalidInstruction = &Error{Kind: ERR_INVALID_INSTRUCTION}
	ErrArithmetic         = &Error{Kind: ERR_ARITHMETIC_EXCEPTION}

	// Range errors
	ErrInvalidAccess = &Error{Kind: ERR_INVALID_ACCESS}
	ErrInvalidData   = &Error{Kind: ERR_INVALID_DATA}
	ErrInvalidNumber = &Error{Kind: ERR_INVALID_NUMBER}

	// Codec errors
	ErrInvalidInstructionString  = &Error{Kind: ERR_INVALID_INSTRUCTION_STRING}
	ErrInvalidInstructionAddress = &Error{Kind: ERR_INVALID_INSTRUCTION_ADDRESS}

	// Attribute registry errors
	ErrInvalidMemoryAttribute      = &Error{Kind: ERR_INVALID_MEMORY_ATTRIBUTE}
	ErrInvalidCPURegisterAttribute = &Error{Kind: ERR_INVALID_CPU_REGISTER_ATTRIBUTE}
	ErrInvalidRegister             = &Error{Kind: ERR_INVALID_REGISTER}
	ErrInvalidCPUState             = &Error{Kind: ERR_INVALID_CPU_STATE}
	ErrInvalidAttributeValue       = &Error{Kind: ERR_INVALID_ATTRIBUTE_VALUE}
	ErrInvalidCPUAttributeValue    = &Error{Kind: ERR_INVALID_CPU_ATTRIBUTE_VALUE}

	// Memory map errors
	ErrInvalidMap = &Error{Kind: ERR_INVALID_MAP}
)
