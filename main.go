// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for the Advent of Code 2024 runner.
//
// Usage:
//
//	go run . [flags]
//	./advent [flags]
//
// This launches the advent CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/sergiocalde94/advent-of-code-2024/ui/cli"
)

// main is the entrypoint for the advent CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("advent CLI error: %v", err)
		os.Exit(1)
	}
}
