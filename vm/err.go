package vm

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrEmptyInput         = errors.New(f("no input"))
	ErrEmptyLine          = errors.New(f("empty line"))
	ErrArgument           = errors.New(f("incorrect argument"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Expander errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates a parser or expander error at its 0-based line index.
type ErrSyntax struct {
	Index int
	Line  string
	Err   error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.Index, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRegisterUnset is a read of a register with no bound value.
type ErrRegisterUnset Register

func (err ErrRegisterUnset) Error() string {
	return f("register %v must be initialized", string(err))
}

// ErrJump is a relative jump that would move the program counter below
// zero.
type ErrJump Constant

func (err ErrJump) Error() string {
	return f("could not jump %v", int32(err))
}

// ErrJumpTooFar is a relative jump landing beyond the end of the program.
type ErrJumpTooFar uint

func (err ErrJumpTooFar) Error() string {
	return f("trying to jump too far %v", uint(err))
}

// ErrPrintValue is a print of a value outside the Unicode scalar range.
type ErrPrintValue struct {
	Reg   Register
	Value Constant
}

func (err ErrPrintValue) Error() string {
	return f("register %v value %v is not a character", err.Reg, int32(err.Value))
}

// ErrRuntime indicates the 1-based source line of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
