// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InputFileName returns the conventional input file name for a day.
func InputFileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// InputPath returns the conventional input path for a day under dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, InputFileName(day))
}

// ReadInput loads a puzzle input file. Line endings are normalized to \n and
// trailing whitespace is stripped so solvers can split on blank lines and
// newlines without special cases.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return NormalizeInput(string(data)), nil
}

// NormalizeInput applies the same normalization ReadInput performs to an
// in-memory input string.
func NormalizeInput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, " \t\n")
}
