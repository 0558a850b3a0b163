// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regvm/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Expander is a single pass source expander for register machine
// programs. It resolves `.equ` named constants, strips `;` comments and
// blank lines, and evaluates compile-time $(...) expressions, producing
// the plain line sequence the parser consumes. LINENO holds the 0-based
// address a line will occupy in the expanded program.
type Expander struct {
	Verbose bool              // If set, verbosely logs the expansion.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (exp *Expander) Predefine(equ string, value string) {
	if exp.predefine == nil {
		exp.predefine = map[string]string{equ: value}
	} else {
		exp.predefine[equ] = value
	}
}

// parenEval does expansion-time $(...) evaluations.
func (exp *Expander) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range exp.Equate {
		con, _err := MakeConstant(str)
		if _err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(con))
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
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}

// expandLine expands equates and $() expressions in a single line.
// lineno is the address the line will occupy in the expanded program.
func (exp *Expander) expandLine(line string, lineno int) (out string, err error) {
	// Set line number.
	exp.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := exp.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := exp.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		exp.Equate[words[1]] = words[2]
		return
	}

	for n, word := range words {
		// Check for equate
		equate, ok := exp.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	out = strings.Join(words, " ")

	return
}

// Expand expands an input stream into the plain line sequence for Parse.
// Comment-only and blank source lines produce no output line. Failures
// are wrapped in ErrSyntax with the 0-based source line index.
func (exp *Expander) Expand(input io.Reader) (lines []string, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			lines = nil
			err = &ErrSyntax{Index: lineno, Line: line, Err: err}
		}
	}()

	exp.Equate = maps.Clone(sysEquate)
	for attr, val := range exp.predefine {
		exp.Equate[attr] = val
	}

	count := 0
	var scanErr error
	for n, text := range internal.IterLines(input, &scanErr) {
		lineno = n
		count = n + 1

		if exp.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var out string
		out, err = exp.expandLine(line, len(lines))
		if err != nil {
			return
		}
		if len(out) != 0 {
			lines = append(lines, out)
		}
	}
	if scanErr != nil {
		// The unreadable source line follows the last scanned one.
		lineno = count
		line = ""
		err = scanErr
	}

	return
}
