package vm

import (
	"fmt"
	"strconv"
	"unicode"
)

// Register is the name of a register. Names are case-sensitive and
// consist of one or more letters.
type Register string

// MakeRegister validates a register name token.
func MakeRegister(token string) (reg Register, err error) {
	if len(token) == 0 {
		err = ErrParseRegister(token)
		return
	}

	for _, r := range token {
		if !unicode.IsLetter(r) {
			err = ErrParseRegister(token)
			return
		}
	}

	reg = Register(token)

	return
}

// Constant is a signed 32-bit machine value. Addition wraps on overflow.
type Constant int32

// ZERO is the branch test value for jnz.
const ZERO = Constant(0)

// MakeConstant parses an integer literal token: an optional leading '-',
// then ASCII digits, within the signed 32-bit range.
func MakeConstant(token string) (con Constant, err error) {
	digits := token
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		err = ErrParseNumber(token)
		return
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			err = ErrParseNumber(token)
			return
		}
	}

	v64, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		err = ErrParseNumber(token)
		return
	}

	con = Constant(v64)

	return
}

// OperandKind is a Constant-or-Register decode type.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_CONST = OperandKind(0) // const
	OPERAND_REG   = OperandKind(1) // reg
)

// ConstOrReg is an operand that is either a literal Constant or a
// Register reference, resolved against the register file at execution
// time.
type ConstOrReg struct {
	Kind  OperandKind
	Const Constant
	Reg   Register
}

// MakeConst creates a literal Constant operand.
func MakeConst(con Constant) ConstOrReg {
	return ConstOrReg{Kind: OPERAND_CONST, Const: con}
}

// MakeReg creates a Register reference operand.
func MakeReg(reg Register) ConstOrReg {
	return ConstOrReg{Kind: OPERAND_REG, Reg: reg}
}

// MakeConstOrReg parses an operand token. A constant parse is attempted
// first; a token that is not a constant falls back to a register name.
// The ordering is language semantics: numeric tokens are always
// constants, never register names.
func MakeConstOrReg(token string) (cr ConstOrReg, err error) {
	con, err := MakeConstant(token)
	if err == nil {
		cr = MakeConst(con)
		return
	}

	reg, err := MakeRegister(token)
	if err == nil {
		cr = MakeReg(reg)
		return
	}

	err = ErrParseValue(token)

	return
}

// String returns the canonical source text of the operand.
func (cr ConstOrReg) String() (out string) {
	switch cr.Kind {
	case OPERAND_CONST:
		out = fmt.Sprintf("%v", int32(cr.Const))
	case OPERAND_REG:
		out = string(cr.Reg)
	}

	return
}

// Instruction is a single decoded operation. The implementation set is
// closed: Mov, Add, Jnz, and Print.
type Instruction interface {
	// String returns the canonical source line for the instruction,
	// such that re-parsing it yields an equal value.
	String() string

	isInstruction()
}

// Mov loads Dst from a constant, or copies another register's current
// value.
type Mov struct {
	Dst Register
	Src ConstOrReg
}

// Add stores the wrap-around sum of Dst and Src into Dst. Both registers
// must already be bound.
type Add struct {
	Dst Register
	Src Register
}

// Jnz jumps relative to the program counter by Offset when Test resolves
// nonzero.
type Jnz struct {
	Test   ConstOrReg
	Offset ConstOrReg
}

// Print emits the register's value as a Unicode character.
type Print struct {
	Reg Register
}

func (Mov) isInstruction()   {}
func (Add) isInstruction()   {}
func (Jnz) isInstruction()   {}
func (Print) isInstruction() {}

func (ins Mov) String() string {
	return fmt.Sprintf("mov %v %v", ins.Dst, ins.Src)
}

func (ins Add) String() string {
	return fmt.Sprintf("add %v %v", ins.Dst, ins.Src)
}

func (ins Jnz) String() string {
	return fmt.Sprintf("jnz %v %v", ins.Test, ins.Offset)
}

func (ins Print) String() string {
	return fmt.Sprintf("print %v", ins.Reg)
}
