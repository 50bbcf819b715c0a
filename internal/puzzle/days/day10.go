// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   10,
		Title: "Hoof It",
		Part1: day10Part1,
		Part2: day10Part2,
	})
}

// reachableSummits walks every strictly +1 ascending path from p and
// records the 9-height cells it can reach along with how many distinct
// paths lead to each.
func reachableSummits(g grid, p point, summits map[point]int) {
	h := g.at(p)
	if h == '9' {
		summits[p]++
		return
	}
	for _, d := range dirs4 {
		n := p.add(d)
		if g.in(n) && g.at(n) == h+1 {
			reachableSummits(g, n, summits)
		}
	}
}

func solveTrailheads(input string, score func(summits map[point]int) int) (string, error) {
	g := parseGrid(input)
	total := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := point{x, y}
			if g.at(p) != '0' {
				continue
			}
			summits := map[point]int{}
			reachableSummits(g, p, summits)
			total += score(summits)
		}
	}
	return itoa(total), nil
}

// day10Part1 scores each trailhead by the number of distinct summits it reaches.
func day10Part1(input string) (string, error) {
	return solveTrailheads(input, func(summits map[point]int) int {
		return len(summits)
	})
}

// day10Part2 rates each trailhead by the number of distinct trails instead.
func day10Part2(input string) (string, error) {
	return solveTrailheads(input, func(summits map[point]int) int {
		paths := 0
		for _, n := range summits {
			paths += n
		}
		return paths
	})
}
