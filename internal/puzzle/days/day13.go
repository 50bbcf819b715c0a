// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   13,
		Title: "Claw Contraption",
		Part1: day13Part1,
		Part2: day13Part2,
	})
}

type clawMachine struct {
	ax, ay, bx, by int64
	px, py         int64
}

var clawNumRe = regexp.MustCompile(`-?\d+`)

func parseClawMachines(input string) ([]clawMachine, error) {
	var machines []clawMachine
	for _, block := range blocks(input) {
		nums := clawNumRe.FindAllString(block, -1)
		if len(nums) != 6 {
			return nil, fmt.Errorf("expected 6 numbers in machine block, got %d", len(nums))
		}
		vals := make([]int64, 6)
		for i, s := range nums {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		machines = append(machines, clawMachine{
			ax: vals[0], ay: vals[1],
			bx: vals[2], by: vals[3],
			px: vals[4], py: vals[5],
		})
	}
	return machines, nil
}

// tokensFor solves the 2x2 linear system by Cramer's rule. Only exact
// non-negative integer press counts win the prize; A costs 3 tokens, B one.
func tokensFor(m clawMachine) int64 {
	det := m.ax*m.by - m.ay*m.bx
	if det == 0 {
		return 0
	}
	aNum := m.px*m.by - m.py*m.bx
	bNum := m.ax*m.py - m.ay*m.px
	if aNum%det != 0 || bNum%det != 0 {
		return 0
	}
	a, b := aNum/det, bNum/det
	if a < 0 || b < 0 {
		return 0
	}
	return 3*a + b
}

func sumTokens(input string, offset int64) (string, error) {
	machines, err := parseClawMachines(input)
	if err != nil {
		return "", err
	}
	var total int64
	for _, m := range machines {
		m.px += offset
		m.py += offset
		total += tokensFor(m)
	}
	return strconv.FormatInt(total, 10), nil
}

func day13Part1(input string) (string, error) {
	return sumTokens(input, 0)
}

// day13Part2 corrects the unit conversion: every prize sits 10^13 further away.
func day13Part2(input string) (string, error) {
	return sumTokens(input, 10_000_000_000_000)
}
