package vm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		ok    bool
	}){
		{"a", true},
		{"A", true},
		{"pc", true},
		{"aVeryLongRegisterName", true},
		{"é", true},
		{"", false},
		{"r0", false},
		{"1", false},
		{"a_b", false},
		{"-a", false},
		{"a-", false},
		{"a b", false},
	}

	for _, entry := range table {
		reg, err := MakeRegister(entry.token)
		if entry.ok {
			assert.NoError(err, entry.token)
			assert.Equal(Register(entry.token), reg, entry.token)
		} else {
			assert.True(errors.Is(err, ErrParseRegister(entry.token)), entry.token)
		}
	}
}

func TestMakeConstant(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		value Constant
		ok    bool
	}){
		{"0", 0, true},
		{"5", 5, true},
		{"-5", -5, true},
		{"007", 7, true},
		{"2147483647", 2147483647, true},
		{"-2147483648", -2147483648, true},
		{"2147483648", 0, false},
		{"-2147483649", 0, false},
		{"+5", 0, false},
		{"0x10", 0, false},
		{"--3", 0, false},
		{"-", 0, false},
		{"", 0, false},
		{"5a", 0, false},
		{"1.5", 0, false},
	}

	for _, entry := range table {
		con, err := MakeConstant(entry.token)
		if entry.ok {
			assert.NoError(err, entry.token)
			assert.Equal(entry.value, con, entry.token)
		} else {
			assert.True(errors.Is(err, ErrParseNumber(entry.token)), entry.token)
		}
	}
}

func TestMakeConstOrReg(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token string
		cr    ConstOrReg
		ok    bool
	}){
		{"5", MakeConst(5), true},
		{"-12", MakeConst(-12), true},
		{"a", MakeReg("a"), true},
		{"offset", MakeReg("offset"), true},
		{"2147483648", ConstOrReg{}, false},
		{"5a", ConstOrReg{}, false},
		{"a5", ConstOrReg{}, false},
		{"-a", ConstOrReg{}, false},
		{"", ConstOrReg{}, false},
	}

	for _, entry := range table {
		cr, err := MakeConstOrReg(entry.token)
		if entry.ok {
			assert.NoError(err, entry.token)
			assert.Equal(entry.cr, cr, entry.token)
		} else {
			assert.True(errors.Is(err, ErrParseValue(entry.token)), entry.token)
		}
	}

	// Numeric tokens are constants, never register names.
	cr, err := MakeConstOrReg("5")
	assert.NoError(err)
	assert.Equal(OPERAND_CONST, cr.Kind)
	assert.Equal(Constant(5), cr.Const)
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  Instruction
		text string
	}){
		{Mov{Dst: "a", Src: MakeConst(5)}, "mov a 5"},
		{Mov{Dst: "a", Src: MakeReg("b")}, "mov a b"},
		{Mov{Dst: "a", Src: MakeConst(-2147483648)}, "mov a -2147483648"},
		{Add{Dst: "a", Src: "b"}, "add a b"},
		{Jnz{Test: MakeReg("a"), Offset: MakeConst(-2)}, "jnz a -2"},
		{Jnz{Test: MakeConst(1), Offset: MakeReg("off")}, "jnz 1 off"},
		{Print{Reg: "x"}, "print x"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.ins.String(), entry.text)
	}
}
