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
		Day:   7,
		Title: "Bridge Repair",
		Part1: day07Part1,
		Part2: day07Part2,
	})
}

type calibration struct {
	target   int
	operands []int
}

func parseCalibrations(input string) ([]calibration, error) {
	var cals []calibration
	for _, line := range lines(input) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("bad calibration line %q", line)
		}
		target, err := atoi(head)
		if err != nil {
			return nil, err
		}
		operands, err := intFields(tail)
		if err != nil {
			return nil, err
		}
		cals = append(cals, calibration{target: target, operands: operands})
	}
	return cals, nil
}

// concatNumbers appends the digits of b to a (12 || 345 = 12345).
func concatNumbers(a, b int) int {
	shift := 1
	for n := b; n > 0; n /= 10 {
		shift *= 10
	}
	if b == 0 {
		shift = 10
	}
	return a*shift + b
}

// reachable checks whether the operands can produce target with the allowed
// operators, evaluated left to right. All operands are positive, so any
// partial value above target is a dead end.
func reachable(target, acc int, rest []int, withConcat bool) bool {
	if len(rest) == 0 {
		return acc == target
	}
	if acc > target {
		return false
	}
	head, tail := rest[0], rest[1:]
	if reachable(target, acc+head, tail, withConcat) {
		return true
	}
	if reachable(target, acc*head, tail, withConcat) {
		return true
	}
	if withConcat && reachable(target, concatNumbers(acc, head), tail, withConcat) {
		return true
	}
	return false
}

func sumSolvable(input string, withConcat bool) (string, error) {
	cals, err := parseCalibrations(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, c := range cals {
		if len(c.operands) == 0 {
			continue
		}
		if reachable(c.target, c.operands[0], c.operands[1:], withConcat) {
			total += c.target
		}
	}
	return itoa(total), nil
}

func day07Part1(input string) (string, error) {
	return sumSolvable(input, false)
}

// day07Part2 adds the concatenation operator.
func day07Part2(input string) (string, error) {
	return sumSolvable(input, true)
}
