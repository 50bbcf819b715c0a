// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   12,
		Title: "Garden Groups",
		Part1: day12Part1,
		Part2: day12Part2,
	})
}

// floodRegion collects the connected region containing start into seen and
// returns its plots.
func floodRegion(g grid, start point, seen map[point]bool) []point {
	plant := g.at(start)
	var region []point
	stack := []point{start}
	seen[start] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)
		for _, d := range dirs4 {
			n := p.add(d)
			if g.in(n) && !seen[n] && g.at(n) == plant {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return region
}

// regionPerimeter counts plot edges that face a different plant or the map edge.
func regionPerimeter(g grid, region []point) int {
	plant := g.at(region[0])
	perimeter := 0
	for _, p := range region {
		for _, d := range dirs4 {
			n := p.add(d)
			if !g.in(n) || g.at(n) != plant {
				perimeter++
			}
		}
	}
	return perimeter
}

// regionSides counts straight fence sections. The number of sides equals the
// number of corners: for each plot, check the four diagonal corner
// configurations (convex and concave).
func regionSides(g grid, region []point) int {
	inRegion := make(map[point]bool, len(region))
	for _, p := range region {
		inRegion[p] = true
	}

	corners := 0
	diag := []point{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for _, p := range region {
		for _, d := range diag {
			sideA := inRegion[p.add(point{d.x, 0})]
			sideB := inRegion[p.add(point{0, d.y})]
			diagonal := inRegion[p.add(d)]
			if !sideA && !sideB {
				corners++ // convex corner
			} else if sideA && sideB && !diagonal {
				corners++ // concave corner
			}
		}
	}
	return corners
}

func solveGardens(input string, price func(g grid, region []point) int) (string, error) {
	g := parseGrid(input)
	seen := map[point]bool{}
	total := 0
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := point{x, y}
			if seen[p] {
				continue
			}
			region := floodRegion(g, p, seen)
			total += len(region) * price(g, region)
		}
	}
	return itoa(total), nil
}

func day12Part1(input string) (string, error) {
	return solveGardens(input, regionPerimeter)
}

func day12Part2(input string) (string, error) {
	return solveGardens(input, regionSides)
}
