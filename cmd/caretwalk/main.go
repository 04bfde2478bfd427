// Command caretwalk moves a caret through a line of bidirectional text,
// either as a printed walk or interactively.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
