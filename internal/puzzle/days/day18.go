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
		Day:   18,
		Title: "RAM Run",
		Part1: func(input string) (string, error) { return day18Part1(input, 1024) },
		Part2: day18Part2,
	})
}

// parseFallingBytes reads the corrupted coordinates. The memory space size
// is derived from the largest coordinate, so the 7x7 example and the 71x71
// real input both work unchanged.
func parseFallingBytes(input string) ([]point, int, error) {
	var fails []point
	size := 0
	for _, line := range lines(input) {
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, 0, fmt.Errorf("bad coordinate %q", line)
		}
		x, err := atoi(xs)
		if err != nil {
			return nil, 0, err
		}
		y, err := atoi(ys)
		if err != nil {
			return nil, 0, err
		}
		fails = append(fails, point{x, y})
		if x > size {
			size = x
		}
		if y > size {
			size = y
		}
	}
	return fails, size + 1, nil
}

// shortestEscape BFSes from the top-left to the bottom-right corner through
// uncorrupted cells; -1 when no path exists.
func shortestEscape(corrupted map[point]bool, size int) int {
	start := point{0, 0}
	end := point{size - 1, size - 1}
	if corrupted[start] {
		return -1
	}

	type node struct {
		pos   point
		steps int
	}
	queue := []node{{pos: start}}
	visited := map[point]bool{start: true}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.pos == end {
			return n.steps
		}
		for _, d := range dirs4 {
			next := n.pos.add(d)
			if next.x < 0 || next.y < 0 || next.x >= size || next.y >= size {
				continue
			}
			if visited[next] || corrupted[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, node{pos: next, steps: n.steps + 1})
		}
	}
	return -1
}

// day18Part1 drops the first `bytes` corrupted coordinates (clamped to the
// input length) and returns the shortest escape route.
func day18Part1(input string, bytes int) (string, error) {
	fails, size, err := parseFallingBytes(input)
	if err != nil {
		return "", err
	}
	if bytes > len(fails) {
		bytes = len(fails)
	}
	corrupted := make(map[point]bool, bytes)
	for _, p := range fails[:bytes] {
		corrupted[p] = true
	}
	steps := shortestEscape(corrupted, size)
	if steps < 0 {
		return "", fmt.Errorf("no escape route after %d bytes", bytes)
	}
	return itoa(steps), nil
}

// day18Part2 finds the first byte that cuts off the exit, by binary search
// over the prefix length.
func day18Part2(input string) (string, error) {
	fails, size, err := parseFallingBytes(input)
	if err != nil {
		return "", err
	}

	blocked := func(n int) bool {
		corrupted := make(map[point]bool, n)
		for _, p := range fails[:n] {
			corrupted[p] = true
		}
		return shortestEscape(corrupted, size) < 0
	}

	lo, hi := 1, len(fails)
	if !blocked(hi) {
		return "", fmt.Errorf("exit never blocked")
	}
	for lo < hi {
		mid := (lo + hi) / 2
		if blocked(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	p := fails[lo-1]
	return fmt.Sprintf("%d,%d", p.x, p.y), nil
}
