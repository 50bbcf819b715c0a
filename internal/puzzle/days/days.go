// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// Package days contains the solvers for all 25 puzzles of Advent of Code
// 2024. Each dayNN.go file registers its solvers with the puzzle registry
// from an init function; this file holds the parsing and grid helpers the
// solvers share.
package days

import (
	"fmt"
	"strconv"
	"strings"
)

// itoa formats an integer answer.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// atoi parses a base-10 integer with a contextual error.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", s, err)
	}
	return n, nil
}

// lines splits the input into lines, dropping a trailing empty one.
func lines(input string) []string {
	return strings.Split(strings.TrimRight(input, "\n"), "\n")
}

// blocks splits the input on blank lines.
func blocks(input string) []string {
	return strings.Split(strings.TrimRight(input, "\n"), "\n\n")
}

// intFields parses all whitespace-separated integers on a line.
func intFields(line string) ([]int, error) {
	fields := strings.Fields(line)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := atoi(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// point is a 2D grid coordinate. x is the column, y the row.
type point struct {
	x, y int
}

func (p point) add(q point) point {
	return point{p.x + q.x, p.y + q.y}
}

// dirs4 are the four cardinal directions.
var dirs4 = []point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// grid is a rectangular character grid indexed as cells[y][x].
type grid struct {
	cells []string
	w, h  int
}

// parseGrid builds a grid from the input lines.
func parseGrid(input string) grid {
	rows := lines(input)
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	return grid{cells: rows, w: w, h: len(rows)}
}

func (g grid) in(p point) bool {
	return p.x >= 0 && p.x < g.w && p.y >= 0 && p.y < g.h
}

func (g grid) at(p point) byte {
	return g.cells[p.y][p.x]
}

// find returns the first cell containing ch, scanning rows top to bottom.
func (g grid) find(ch byte) (point, bool) {
	for y, row := range g.cells {
		if x := strings.IndexByte(row, ch); x >= 0 {
			return point{x, y}, true
		}
	}
	return point{}, false
}
