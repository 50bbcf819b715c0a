// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"regexp"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   3,
		Title: "Mull It Over",
		Part1: day03Part1,
		Part2: day03Part2,
	})
}

var mulInstrRe = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)

// sumMuls scans the corrupted memory for mul instructions. When
// withToggles is set, don't() disables and do() re-enables the following
// multiplications.
func sumMuls(input string, withToggles bool) (int, error) {
	total := 0
	enabled := true
	for _, m := range mulInstrRe.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			if withToggles {
				enabled = false
			}
		default:
			if !enabled {
				continue
			}
			a, err := atoi(m[1])
			if err != nil {
				return 0, err
			}
			b, err := atoi(m[2])
			if err != nil {
				return 0, err
			}
			total += a * b
		}
	}
	return total, nil
}

func day03Part1(input string) (string, error) {
	total, err := sumMuls(input, false)
	if err != nil {
		return "", err
	}
	return itoa(total), nil
}

func day03Part2(input string) (string, error) {
	total, err := sumMuls(input, true)
	if err != nil {
		return "", err
	}
	return itoa(total), nil
}
