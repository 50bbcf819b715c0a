// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   22,
		Title: "Monkey Market",
		Part1: day22Part1,
		Part2: day22Part2,
	})
}

// nextSecret evolves a secret number one step: mix and prune with shifts
// by 64, /32 and *2048.
func nextSecret(s int) int {
	const prune = 16777216
	s = (s ^ (s << 6)) % prune
	s = (s ^ (s >> 5)) % prune
	s = (s ^ (s << 11)) % prune
	return s
}

// day22Part1 sums every buyer's 2000th secret number.
func day22Part1(input string) (string, error) {
	seeds, err := intFields(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, s := range seeds {
		for i := 0; i < 2000; i++ {
			s = nextSecret(s)
		}
		total += s
	}
	return itoa(total), nil
}

// deltaSeq packs four consecutive price changes (each in -9..9) into one key.
type deltaSeq [4]int

// day22Part2 finds the four-change sequence that earns the most bananas.
// Each buyer sells at the first occurrence of the sequence, so only the
// first price per sequence per buyer counts.
func day22Part2(input string) (string, error) {
	seeds, err := intFields(input)
	if err != nil {
		return "", err
	}

	totals := map[deltaSeq]int{}
	for _, seed := range seeds {
		seen := map[deltaSeq]bool{}
		s := seed
		prevPrice := s % 10
		var deltas deltaSeq
		for i := 0; i < 2000; i++ {
			s = nextSecret(s)
			price := s % 10
			deltas = deltaSeq{deltas[1], deltas[2], deltas[3], price - prevPrice}
			prevPrice = price
			if i < 3 {
				continue
			}
			if !seen[deltas] {
				seen[deltas] = true
				totals[deltas] += price
			}
		}
	}

	best := 0
	for _, n := range totals {
		if n > best {
			best = n
		}
	}
	return itoa(best), nil
}
