// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/regvm/driver"
)

func main() {
	var output string
	var expand bool
	var report bool
	var verbose bool

	flag.StringVar(&output, "o", "-", "Print output")
	flag.BoolVar(&expand, "x", false, "Expand .equ, comments, and $() before parsing")
	flag.BoolVar(&report, "t", false, "Report the register table after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected a single program file", os.Args[0])
	}
	program := flag.Arg(0)

	drv := &driver.Driver{
		Verbose: verbose,
		Expand:  expand,
	}

	if output == "-" {
		drv.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		drv.Output = ouf
	}

	if report {
		drv.Report = os.Stderr
	}

	err := drv.RunFile(program)
	if err != nil {
		log.Printf("%v: %v", program, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
