// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"io"
	"strings"

	"github.com/ezrec/regvm/internal"
)

// Parse parses whitespace-trimmed source lines into a Program. The first
// malformed line aborts the whole parse; a partial Program is never
// returned. Line-scoped failures are wrapped in ErrSyntax with the
// 0-based line index.
func Parse(lines []string) (prog Program, err error) {
	if len(lines) == 0 {
		err = ErrEmptyInput
		return
	}

	var index int
	var line string

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{Index: index, Line: line, Err: err}
		}
	}()

	for index, line = range lines {
		var ins Instruction
		ins, err = parseLine(line)
		if err != nil {
			return
		}
		prog = append(prog, ins)
	}

	return
}

// ParseReader reads one instruction per line from an input stream,
// trimming surrounding whitespace. A line the scanner cannot read is an
// ErrSyntax at that line's index.
func ParseReader(input io.Reader) (prog Program, err error) {
	var lines []string
	var scanErr error
	for _, text := range internal.IterLines(input, &scanErr) {
		lines = append(lines, strings.TrimSpace(text))
	}
	if scanErr != nil {
		err = &ErrSyntax{Index: len(lines), Err: scanErr}
		return
	}

	return Parse(lines)
}

// parseLine decodes a single source line. Dispatch is by exact opcode and
// token count; any other shape is an invalid instruction.
func parseLine(line string) (ins Instruction, err error) {
	words := strings.Fields(line)

	if len(words) == 0 {
		err = ErrEmptyLine
		return
	}

	switch {
	case words[0] == "mov" && len(words) == 3:
		var dst Register
		dst, err = MakeRegister(words[1])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		var src ConstOrReg
		src, err = MakeConstOrReg(words[2])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		ins = Mov{Dst: dst, Src: src}
	case words[0] == "add" && len(words) == 3:
		var dst Register
		dst, err = MakeRegister(words[1])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		var src Register
		src, err = MakeRegister(words[2])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		ins = Add{Dst: dst, Src: src}
	case words[0] == "print" && len(words) == 2:
		var reg Register
		reg, err = MakeRegister(words[1])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		ins = Print{Reg: reg}
	case words[0] == "jnz" && len(words) == 3:
		var test ConstOrReg
		test, err = MakeConstOrReg(words[1])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		var offset ConstOrReg
		offset, err = MakeConstOrReg(words[2])
		if err != nil {
			err = errors.Join(ErrArgument, err)
			return
		}
		ins = Jnz{Test: test, Offset: offset}
	default:
		err = ErrInstructionInvalid
	}

	return
}
