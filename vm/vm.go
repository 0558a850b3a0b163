// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"
)

// Vm is the register machine execution context.
type Vm struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination for print instructions.

	Registers map[Register]Constant // Register file.
	Pc        uint                  // Current program counter.
}

// NewVm creates a new Vm printing to the standard output.
func NewVm() (vm *Vm) {
	vm = &Vm{
		Output:    os.Stdout,
		Registers: map[Register]Constant{},
	}

	return
}

// Interpret runs a program from startPc to completion. The register file
// and program counter are created fresh for the run; the final state
// remains readable afterwards. A halted run returns nil; a fatal
// condition returns an ErrRuntime locating the failing line.
func (vm *Vm) Interpret(prog Program, startPc uint) (err error) {
	vm.Registers = map[Register]Constant{}
	vm.Pc = startPc

	done := false
	for !done && err == nil {
		done, err = vm.Tick(prog)
	}

	return
}

// Tick executes a single instruction cycle. Execution is done once the
// program counter moves past the end of the program.
func (vm *Vm) Tick(prog Program) (done bool, err error) {
	if vm.Pc >= uint(len(prog)) {
		done = true
		return
	}

	lineno := int(vm.Pc) + 1
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	ins := prog[vm.Pc]

	if vm.Verbose {
		log.Printf("%3d: %v", vm.Pc, ins)
	}

	err = vm.execute(prog, ins)

	return
}

// execute dispatches a single instruction. Every non-fatal path advances
// the program counter exactly once.
func (vm *Vm) execute(prog Program, ins Instruction) (err error) {
	switch op := ins.(type) {
	case Mov:
		var value Constant
		value, err = vm.resolve(op.Src)
		if err != nil {
			return
		}
		vm.set(op.Dst, value)
		vm.Pc += 1
	case Add:
		dst, dst_ok := vm.Registers[op.Dst]
		src, src_ok := vm.Registers[op.Src]
		if !dst_ok {
			err = errors.Join(err, ErrRegisterUnset(op.Dst))
		}
		if !src_ok {
			err = errors.Join(err, ErrRegisterUnset(op.Src))
		}
		if err != nil {
			return
		}
		// Native int32 addition wraps on overflow.
		vm.set(op.Dst, dst+src)
		vm.Pc += 1
	case Print:
		value, ok := vm.Registers[op.Reg]
		if ok {
			if !utf8.ValidRune(rune(value)) {
				err = ErrPrintValue{Reg: op.Reg, Value: value}
				return
			}
			if vm.Output == nil {
				vm.Output = os.Stdout
			}
			_, err = fmt.Fprintf(vm.Output, "%c", rune(value))
			if err != nil {
				return
			}
		}
		// An unbound register prints nothing.
		vm.Pc += 1
	case Jnz:
		var test Constant
		test, err = vm.resolve(op.Test)
		if err != nil {
			return
		}
		if test == ZERO {
			vm.Pc += 1
			return
		}
		var offset Constant
		offset, err = vm.resolve(op.Offset)
		if err != nil {
			return
		}
		var target uint
		target, err = jump(vm.Pc, offset, uint(len(prog)))
		if err != nil {
			return
		}
		vm.Pc = target
	}

	return
}

// resolve returns a constant operand directly, or the current value of a
// register operand.
func (vm *Vm) resolve(cr ConstOrReg) (value Constant, err error) {
	switch cr.Kind {
	case OPERAND_CONST:
		value = cr.Const
	case OPERAND_REG:
		var ok bool
		value, ok = vm.Registers[cr.Reg]
		if !ok {
			err = ErrRegisterUnset(cr.Reg)
		}
	}

	return
}

// set binds a register to a value.
func (vm *Vm) set(reg Register, value Constant) {
	if vm.Verbose {
		log.Printf("%v <- %v", reg, int32(value))
	}

	if vm.Registers == nil {
		vm.Registers = map[Register]Constant{}
	}
	vm.Registers[reg] = value
}

// jump computes a relative jump from pc using the magnitude and sign of
// the offset, bound-checked against the program length. The counter must
// not go below zero; landing exactly at limit is the halt state, and
// anything beyond it is out of range. A zero offset targets pc itself.
func jump(pc uint, offset Constant, limit uint) (target uint, err error) {
	wide := int64(offset)

	var magnitude uint
	if wide < 0 {
		magnitude = uint(-wide)
	} else {
		magnitude = uint(wide)
	}

	if wide < 0 {
		if magnitude > pc {
			err = ErrJump(offset)
			return
		}
		target = pc - magnitude
	} else {
		target = pc + magnitude
	}

	if target > limit {
		err = ErrJumpTooFar(target)
		return
	}

	return
}
