// Command linegrep prints every line of a file matching a pattern, one per
// line, preserving input order.
//
// Usage:
//
//	linegrep PATTERN FILE
//
// Setting the IGNORE_CASE environment variable, to any value, enables
// case-insensitive matching.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/coregx/linegrep"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: linegrep PATTERN FILE\n")
		os.Exit(2)
	}

	pattern := os.Args[1]
	path := os.Args[2]
	_, ignoreCase := os.LookupEnv("IGNORE_CASE")

	pipeline, err := linegrep.CompileWithConfig(pattern, ignoreCase, linegrep.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "linegrep: %v\n", err)
		os.Exit(2)
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linegrep: %v\n", err)
		os.Exit(2)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if pipeline.MatchLine(line) {
			fmt.Println(line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "linegrep: %v\n", err)
		os.Exit(2)
	}
}
