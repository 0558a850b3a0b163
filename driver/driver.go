// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package driver loads register machine programs and runs them to
// completion.
package driver

import (
	"io"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/regvm/vm"
)

// Driver runs a program source through expansion, parsing, and
// execution, starting at address 0.
type Driver struct {
	Verbose bool      // If set, enables verbose logging.
	Expand  bool      // If set, runs the source expander before parsing.
	Output  io.Writer // Destination for print instructions (default stdout).
	Report  io.Writer // If set, receives a register file report after the run.

	*vm.Vm // Machine state of the most recent run.
}

// Run parses and executes a program source. The final machine state
// remains readable through the embedded Vm.
func (drv *Driver) Run(source io.Reader) (err error) {
	var prog vm.Program

	if drv.Expand {
		exp := &vm.Expander{Verbose: drv.Verbose}
		var lines []string
		lines, err = exp.Expand(source)
		if err != nil {
			return
		}
		if drv.Verbose {
			for n, line := range lines {
				log.Printf("%3d: %v", n, line)
			}
		}
		prog, err = vm.Parse(lines)
	} else {
		prog, err = vm.ParseReader(source)
	}
	if err != nil {
		return
	}

	drv.Vm = vm.NewVm()
	drv.Vm.Verbose = drv.Verbose
	if drv.Output != nil {
		drv.Vm.Output = drv.Output
	}

	err = drv.Vm.Interpret(prog, 0)
	if err != nil {
		return
	}

	if drv.Report != nil {
		drv.report()
	}

	return
}

// RunFile runs a program from a file path, or the standard input for "-".
func (drv *Driver) RunFile(path string) (err error) {
	if path == "-" {
		return drv.Run(os.Stdin)
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return drv.Run(inf)
}

// report renders the final register file as a table, sorted by register
// name, with the final program counter in the footer.
func (drv *Driver) report() {
	regs := slices.Sorted(maps.Keys(drv.Vm.Registers))

	t := table.NewWriter()
	t.SetOutputMirror(drv.Report)
	t.AppendHeader(table.Row{"Register", "Value"})
	for _, reg := range regs {
		t.AppendRow(table.Row{string(reg), int32(drv.Vm.Registers[reg])})
	}
	t.AppendFooter(table.Row{"pc", drv.Vm.Pc})
	t.Render()
}
