// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   14,
		Title: "Restroom Redoubt",
		Part1: day14Part1,
		Part2: day14Part2,
	})
}

type robot struct {
	pos, vel point
}

var robotRe = regexp.MustCompile(`p=(-?\d+),(-?\d+) v=(-?\d+),(-?\d+)`)

// parseRobots reads the robot list. The map dimensions are derived from the
// starting positions (max coordinate + 1), which makes the 11x7 example and
// the 101x103 real input both work unchanged.
func parseRobots(input string) ([]robot, int, int, error) {
	var robots []robot
	maxX, maxY := 0, 0
	for _, line := range lines(input) {
		m := robotRe.FindStringSubmatch(line)
		if m == nil {
			return nil, 0, 0, fmt.Errorf("bad robot line %q", line)
		}
		var vals [4]int
		for i := range vals {
			n, err := atoi(m[i+1])
			if err != nil {
				return nil, 0, 0, err
			}
			vals[i] = n
		}
		r := robot{pos: point{vals[0], vals[1]}, vel: point{vals[2], vals[3]}}
		robots = append(robots, r)
		if r.pos.x > maxX {
			maxX = r.pos.x
		}
		if r.pos.y > maxY {
			maxY = r.pos.y
		}
	}
	return robots, maxX + 1, maxY + 1, nil
}

// step advances the robot one second, wrapping around the map edges.
func (r *robot) step(w, h int) {
	r.pos.x = ((r.pos.x+r.vel.x)%w + w) % w
	r.pos.y = ((r.pos.y+r.vel.y)%h + h) % h
}

// day14Part1 multiplies the quadrant counts after 100 seconds. Robots on the
// middle row or column count for no quadrant.
func day14Part1(input string) (string, error) {
	robots, w, h, err := parseRobots(input)
	if err != nil {
		return "", err
	}

	midX, midY := w/2, h/2
	var quadrants [4]int
	for i := range robots {
		for s := 0; s < 100; s++ {
			robots[i].step(w, h)
		}
		p := robots[i].pos
		switch {
		case p.x < midX && p.y < midY:
			quadrants[0]++
		case p.x > midX && p.y < midY:
			quadrants[1]++
		case p.x < midX && p.y > midY:
			quadrants[2]++
		case p.x > midX && p.y > midY:
			quadrants[3]++
		}
	}
	return itoa(quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]), nil
}

// day14Part2 looks for the Easter egg: the first second where eight robots
// line up adjacently in a row or column, which only happens when the
// Christmas tree picture forms.
func day14Part2(input string) (string, error) {
	robots, w, h, err := parseRobots(input)
	if err != nil {
		return "", err
	}

	const runLength = 8
	for second := 1; ; second++ {
		for i := range robots {
			robots[i].step(w, h)
		}

		positions := make([]point, len(robots))
		for i, r := range robots {
			positions[i] = r.pos
		}
		sort.Slice(positions, func(i, j int) bool {
			if positions[i].x != positions[j].x {
				return positions[i].x < positions[j].x
			}
			return positions[i].y < positions[j].y
		})

		vertical := 1   // same x, consecutive y
		horizontal := 1 // same y, consecutive x
		found := false
		for i := 1; i < len(positions); i++ {
			prev, cur := positions[i-1], positions[i]

			if cur.x == prev.x && cur.y == prev.y+1 {
				vertical++
			} else {
				vertical = 1
			}
			if cur.y == prev.y && cur.x == prev.x+1 {
				horizontal++
			} else {
				horizontal = 1
			}
			if vertical == runLength || horizontal == runLength {
				found = true
				break
			}
		}
		if found {
			return itoa(second), nil
		}
	}
}
