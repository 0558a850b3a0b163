// Package vm implements the parser and interpreter for a small register
// machine language.
//
// The machine consists of an unbounded file of named signed 32-bit
// registers, a program counter, and four instructions: mov (load a
// register from a constant or another register), add (wrap-around
// addition), jnz (conditional relative jump), and print (emit a register
// as a Unicode character). Execution halts when the program counter moves
// past the end of the program.
//
// The parser turns whitespace-trimmed source lines into a Program,
// rejecting malformed input with located errors. The expander provides an
// optional source pre-pass supporting named constants (.equ), comments,
// and compile-time $() expression evaluation; the parser itself never
// sees those forms.
package vm
