// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   25,
		Title: "Code Chronicle",
		Part1: day25Part1,
		// Day 25 has no part two.
	})
}

// day25Part1 parses lock and key schematics (locks have a filled top row)
// and counts the lock/key pairs whose columns never overlap. Column heights
// count every # including the base row, so a pair fits when each column sum
// stays within the schematic height.
func day25Part1(input string) (string, error) {
	var locks, keys [][]int
	height := 0
	for _, block := range blocks(input) {
		rows := lines(block)
		if len(rows) == 0 {
			continue
		}
		height = len(rows)
		width := len(rows[0])
		columns := make([]int, width)
		for _, row := range rows {
			if len(row) != width {
				return "", fmt.Errorf("ragged schematic row %q", row)
			}
			for x := 0; x < width; x++ {
				if row[x] == '#' {
					columns[x]++
				}
			}
		}
		if rows[0][0] == '#' {
			locks = append(locks, columns)
		} else {
			keys = append(keys, columns)
		}
	}

	fits := 0
	for _, lock := range locks {
		for _, key := range keys {
			ok := len(lock) == len(key)
			for x := 0; ok && x < len(lock); x++ {
				if lock[x]+key[x] > height {
					ok = false
				}
			}
			if ok {
				fits++
			}
		}
	}
	return itoa(fits), nil
}
