// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"strconv"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   21,
		Title: "Keypad Conundrum",
		Part1: func(input string) (string, error) { return sumComplexities(input, 2) },
		Part2: func(input string) (string, error) { return sumComplexities(input, 25) },
	})
}

// Key coordinates on the numeric door keypad; the gap sits at {0,3}.
var numPad = map[byte]point{
	'7': {0, 0}, '8': {1, 0}, '9': {2, 0},
	'4': {0, 1}, '5': {1, 1}, '6': {2, 1},
	'1': {0, 2}, '2': {1, 2}, '3': {2, 2},
	'0': {1, 3}, 'A': {2, 3},
}

var numPadGap = point{0, 3}

// Key coordinates on the directional robot keypad; the gap sits at {0,0}.
var dirPad = map[byte]point{
	'^': {1, 0}, 'A': {2, 0},
	'<': {0, 1}, 'v': {1, 1}, '>': {2, 1},
}

var dirPadGap = point{0, 0}

// keyPaths returns the candidate button sequences (ending in A) that move an
// arm from a to b: horizontal-then-vertical and vertical-then-horizontal,
// dropping any order that would hover over the keypad gap.
func keyPaths(a, b, gap point) []string {
	horiz := strings.Repeat(">", max(0, b.x-a.x)) + strings.Repeat("<", max(0, a.x-b.x))
	vert := strings.Repeat("v", max(0, b.y-a.y)) + strings.Repeat("^", max(0, a.y-b.y))

	if horiz == "" || vert == "" {
		return []string{horiz + vert + "A"}
	}
	var paths []string
	if (point{b.x, a.y}) != gap {
		paths = append(paths, horiz+vert+"A")
	}
	if (point{a.x, b.y}) != gap {
		paths = append(paths, vert+horiz+"A")
	}
	return paths
}

type dirCostKey struct {
	seq   string
	depth int
}

// dirCost is the number of human presses needed to make a directional robot
// at the given depth type seq, with depth 0 being the human keypad.
func dirCost(seq string, depth int, memo map[dirCostKey]int) int {
	if depth == 0 {
		return len(seq)
	}
	key := dirCostKey{seq, depth}
	if c, ok := memo[key]; ok {
		return c
	}

	total := 0
	pos := dirPad['A']
	for i := 0; i < len(seq); i++ {
		next := dirPad[seq[i]]
		best := -1
		for _, p := range keyPaths(pos, next, dirPadGap) {
			c := dirCost(p, depth-1, memo)
			if best < 0 || c < best {
				best = c
			}
		}
		total += best
		pos = next
	}
	memo[key] = total
	return total
}

// codeCost types one door code on the numeric keypad through a chain of
// directional robots.
func codeCost(code string, robots int, memo map[dirCostKey]int) int {
	total := 0
	pos := numPad['A']
	for i := 0; i < len(code); i++ {
		next := numPad[code[i]]
		best := -1
		for _, p := range keyPaths(pos, next, numPadGap) {
			c := dirCost(p, robots, memo)
			if best < 0 || c < best {
				best = c
			}
		}
		total += best
		pos = next
	}
	return total
}

// sumComplexities scores each code as its button-press count times its
// numeric part.
func sumComplexities(input string, robots int) (string, error) {
	memo := map[dirCostKey]int{}
	total := 0
	for _, code := range lines(input) {
		numeric, err := strconv.Atoi(strings.TrimSuffix(code, "A"))
		if err != nil {
			return "", err
		}
		total += numeric * codeCost(code, robots, memo)
	}
	return itoa(total), nil
}
