// SPDX-License-Identifier: MIT

// Command campusnav answers routing and structure questions about a campus
// map loaded from two CSV files.
//
// Every subcommand loads the map, runs one operation and exits; edits made
// by mutation subcommands live only for that process. Use "campusnav shell"
// to issue several commands against one in-memory map.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := newApp(in, out, errOut)
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	return 0
}
