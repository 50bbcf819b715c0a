// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"strconv"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   11,
		Title: "Plutonian Pebbles",
		Part1: func(input string) (string, error) { return blinkStones(input, 25) },
		Part2: func(input string) (string, error) { return blinkStones(input, 75) },
	})
}

// blinkStones applies the blink rules the given number of times. The stone
// order never matters, so the line is kept as a value -> count multiset.
func blinkStones(input string, blinks int) (string, error) {
	initial, err := intFields(input)
	if err != nil {
		return "", err
	}
	stones := map[int]int{}
	for _, s := range initial {
		stones[s]++
	}

	for i := 0; i < blinks; i++ {
		next := make(map[int]int, len(stones)*2)
		for value, n := range stones {
			switch {
			case value == 0:
				next[1] += n
			default:
				digits := strconv.Itoa(value)
				if len(digits)%2 == 0 {
					left, _ := strconv.Atoi(digits[:len(digits)/2])
					right, _ := strconv.Atoi(digits[len(digits)/2:])
					next[left] += n
					next[right] += n
				} else {
					next[value*2024] += n
				}
			}
		}
		stones = next
	}

	total := 0
	for _, n := range stones {
		total += n
	}
	return itoa(total), nil
}
