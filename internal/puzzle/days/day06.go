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
		Day:   6,
		Title: "Guard Gallivant",
		Part1: day06Part1,
		Part2: day06Part2,
	})
}

// guardState is a position plus a heading index into guardDirs.
type guardState struct {
	pos point
	dir int
}

// guardDirs is the turn order: up, right, down, left.
var guardDirs = []point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// walkGuard follows the guard until it leaves the grid or revisits a state.
// extraObstacle marks one additional blocked cell (or {-1,-1} for none).
// It returns the visited positions and whether the guard ended up looping.
func walkGuard(g grid, start point, extraObstacle point) (map[point]bool, bool) {
	visited := make(map[point]bool)
	seen := make(map[guardState]bool)

	s := guardState{pos: start}
	for {
		if seen[s] {
			return visited, true
		}
		seen[s] = true
		visited[s.pos] = true

		next := s.pos.add(guardDirs[s.dir])
		if !g.in(next) {
			return visited, false
		}
		if g.at(next) == '#' || next == extraObstacle {
			s.dir = (s.dir + 1) % 4
			continue
		}
		s.pos = next
	}
}

func day06Part1(input string) (string, error) {
	g := parseGrid(input)
	start, ok := g.find('^')
	if !ok {
		return "", fmt.Errorf("no guard position in input")
	}
	visited, _ := walkGuard(g, start, point{-1, -1})
	return itoa(len(visited)), nil
}

// day06Part2 counts the positions where a new obstruction traps the guard in
// a loop. Only cells on the original path can change the route.
func day06Part2(input string) (string, error) {
	g := parseGrid(input)
	start, ok := g.find('^')
	if !ok {
		return "", fmt.Errorf("no guard position in input")
	}
	path, _ := walkGuard(g, start, point{-1, -1})

	count := 0
	for p := range path {
		if p == start {
			continue
		}
		if _, loops := walkGuard(g, start, p); loops {
			count++
		}
	}
	return itoa(count), nil
}
