// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   19,
		Title: "Linen Layout",
		Part1: day19Part1,
		Part2: day19Part2,
	})
}

func parseTowels(input string) ([]string, []string, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("expected towel patterns and designs separated by a blank line")
	}
	var patterns []string
	for _, p := range strings.Split(parts[0], ",") {
		patterns = append(patterns, strings.TrimSpace(p))
	}
	return patterns, lines(parts[1]), nil
}

// countArrangements counts the ways design can be assembled from patterns,
// with ways[i] holding the arrangement count for the first i characters.
func countArrangements(design string, patterns []string) int {
	ways := make([]int, len(design)+1)
	ways[0] = 1
	for i := 1; i <= len(design); i++ {
		for _, p := range patterns {
			if len(p) <= i && design[i-len(p):i] == p {
				ways[i] += ways[i-len(p)]
			}
		}
	}
	return ways[len(design)]
}

func day19Part1(input string) (string, error) {
	patterns, designs, err := parseTowels(input)
	if err != nil {
		return "", err
	}
	possible := 0
	for _, d := range designs {
		if countArrangements(d, patterns) > 0 {
			possible++
		}
	}
	return itoa(possible), nil
}

func day19Part2(input string) (string, error) {
	patterns, designs, err := parseTowels(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, d := range designs {
		total += countArrangements(d, patterns)
	}
	return itoa(total), nil
}
