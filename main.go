// Command litest-demo runs a sample test suite through the litest framework
// and renders the report with the formatter selected on the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/litest/litest-go/litest"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	factory, err := params.formatterFactory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var out io.Writer = os.Stdout
	if params.outPath != "" {
		f, err := os.Create(params.outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create output file: %s\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	mode := litest.ModeContinue
	if params.throwMode {
		mode = litest.ModeThrow
	}

	suite := newDemoSuite()
	if params.testNums.IsDefined() {
		err = suite.RunSome(out, factory, params.testNums.indices, mode)
	} else {
		err = suite.Run(out, factory, mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "run stopped: %s\n", err)
		return 1
	}
	if suite.TotalTestStats().Fails > 0 {
		return 1
	}
	return 0
}
