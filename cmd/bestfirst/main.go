// bestfirst solves search puzzles with a generic A* engine.
//
// Usage:
//
//	bestfirst molecule -f <input> [--part=1|2] [--exact]
//	bestfirst wizard -f <input> [--hard]
//
// An input of "-" is read from standard input. The global --config flag
// names a YAML file holding defaults, --debug logs search statistics to
// standard error and --mermaid prints the solution as a Mermaid flowchart.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
