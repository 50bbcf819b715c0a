// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   4,
		Title: "Ceres Search",
		Part1: day04Part1,
		Part2: day04Part2,
	})
}

// day04Part1 counts every occurrence of XMAS in the word search, in all
// eight directions.
func day04Part1(input string) (string, error) {
	g := parseGrid(input)
	const word = "XMAS"

	dirs := []point{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	count := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			for _, d := range dirs {
				p := point{x, y}
				ok := true
				for i := 0; i < len(word); i++ {
					if !g.in(p) || g.at(p) != word[i] {
						ok = false
						break
					}
					p = p.add(d)
				}
				if ok {
					count++
				}
			}
		}
	}
	return itoa(count), nil
}

// day04Part2 counts X-MAS shapes: two crossing diagonal MAS strings
// centered on an A.
func day04Part2(input string) (string, error) {
	g := parseGrid(input)

	isMS := func(a, b byte) bool {
		return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
	}

	count := 0
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			if g.at(point{x, y}) != 'A' {
				continue
			}
			nw, se := g.at(point{x - 1, y - 1}), g.at(point{x + 1, y + 1})
			ne, sw := g.at(point{x + 1, y - 1}), g.at(point{x - 1, y + 1})
			if isMS(nw, se) && isMS(ne, sw) {
				count++
			}
		}
	}
	return itoa(count), nil
}
