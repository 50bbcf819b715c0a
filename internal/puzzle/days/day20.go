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
		Day:   20,
		Title: "Race Condition",
		Part1: func(input string) (string, error) { return countCheats(input, 2, 100) },
		Part2: func(input string) (string, error) { return countCheats(input, 20, 100) },
	})
}

// trackDistances BFSes along the single race track from start, returning
// the picosecond count to reach every track cell.
func trackDistances(g grid, start point) map[point]int {
	dist := map[point]int{start: 0}
	queue := []point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range dirs4 {
			n := p.add(d)
			if !g.in(n) || g.at(n) == '#' {
				continue
			}
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[p] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// countCheats counts wall-phasing shortcuts of at most maxCheat picoseconds
// that save at least atLeast picoseconds. A cheat is a pair of track cells
// whose Manhattan distance fits in the cheat window; the saving is the track
// distance between them minus the cheat length.
func countCheats(input string, maxCheat, atLeast int) (string, error) {
	g := parseGrid(input)
	start, ok := g.find('S')
	if !ok {
		return "", fmt.Errorf("no start on race track")
	}
	dist := trackDistances(g, start)

	cells := make([]point, 0, len(dist))
	for p := range dist {
		cells = append(cells, p)
	}

	count := 0
	for _, a := range cells {
		for dy := -maxCheat; dy <= maxCheat; dy++ {
			rest := maxCheat - abs(dy)
			for dx := -rest; dx <= rest; dx++ {
				b := point{a.x + dx, a.y + dy}
				db, ok := dist[b]
				if !ok {
					continue
				}
				cheat := abs(dx) + abs(dy)
				if db-dist[a]-cheat >= atLeast {
					count++
				}
			}
		}
	}
	return itoa(count), nil
}
