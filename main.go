//go:build !js
// +build !js

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			fmt.Fprintln(os.Stderr, "usage: fuzz-to-testcase artifact...")
		}
		return
	}

	if err := run(os.Stdout, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run emits one testcase block per artifact path, in argument order. The
// first unreadable path aborts the run; blocks already written stay written.
func run(w io.Writer, paths []string) error {
	e := &emitter{Harness: harnessName}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := e.emit(w, data); err != nil {
			return err
		}
	}
	return nil
}
