// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   2,
		Title: "Red-Nosed Reports",
		Part1: day02Part1,
		Part2: day02Part2,
	})
}

// reportIsSafe checks that all adjacent level differences stay within 1..3
// in a single direction.
func reportIsSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	ascending := true
	descending := true
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if d < 1 || d > 3 {
			ascending = false
		}
		if d > -1 || d < -3 {
			descending = false
		}
	}
	return ascending || descending
}

// withoutLevel returns a copy of levels with index i removed.
func withoutLevel(levels []int, i int) []int {
	out := make([]int, 0, len(levels)-1)
	out = append(out, levels[:i]...)
	return append(out, levels[i+1:]...)
}

func day02Part1(input string) (string, error) {
	safe := 0
	for _, line := range lines(input) {
		levels, err := intFields(line)
		if err != nil {
			return "", err
		}
		if reportIsSafe(levels) {
			safe++
		}
	}
	return itoa(safe), nil
}

// day02Part2 tolerates a single bad level per report (the Problem Dampener).
func day02Part2(input string) (string, error) {
	safe := 0
	for _, line := range lines(input) {
		levels, err := intFields(line)
		if err != nil {
			return "", err
		}
		if reportIsSafe(levels) {
			safe++
			continue
		}
		for i := range levels {
			if reportIsSafe(withoutLevel(levels, i)) {
				safe++
				break
			}
		}
	}
	return itoa(safe), nil
}
