// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   8,
		Title: "Resonant Collinearity",
		Part1: day08Part1,
		Part2: day08Part2,
	})
}

// antennasByFrequency groups antenna positions by their frequency character.
func antennasByFrequency(g grid) map[byte][]point {
	antennas := map[byte][]point{}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			ch := g.at(point{x, y})
			if ch != '.' {
				antennas[ch] = append(antennas[ch], point{x, y})
			}
		}
	}
	return antennas
}

// day08Part1 marks, for each antenna pair, the two points twice as far from
// one antenna as the other.
func day08Part1(input string) (string, error) {
	g := parseGrid(input)
	antinodes := map[point]bool{}

	for _, positions := range antennasByFrequency(g) {
		for i, a := range positions {
			for _, b := range positions[i+1:] {
				d := point{b.x - a.x, b.y - a.y}
				for _, n := range []point{b.add(d), {a.x - d.x, a.y - d.y}} {
					if g.in(n) {
						antinodes[n] = true
					}
				}
			}
		}
	}
	return itoa(len(antinodes)), nil
}

// day08Part2 extends antinodes to every grid point collinear with an
// antenna pair, including the antennas themselves.
func day08Part2(input string) (string, error) {
	g := parseGrid(input)
	antinodes := map[point]bool{}

	for _, positions := range antennasByFrequency(g) {
		for i, a := range positions {
			for _, b := range positions[i+1:] {
				d := point{b.x - a.x, b.y - a.y}
				for p := a; g.in(p); p = p.add(d) {
					antinodes[p] = true
				}
				back := point{-d.x, -d.y}
				for p := a; g.in(p); p = p.add(back) {
					antinodes[p] = true
				}
			}
		}
	}
	return itoa(len(antinodes)), nil
}
