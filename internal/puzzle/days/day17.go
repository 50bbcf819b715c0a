// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   17,
		Title: "Chronospatial Computer",
		Part1: day17Part1,
		Part2: day17Part2,
	})
}

type chronoMachine struct {
	a, b, c int
	program []int
}

var chronoNumRe = regexp.MustCompile(`-?\d+`)

func parseChronoMachine(input string) (chronoMachine, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return chronoMachine{}, fmt.Errorf("expected registers and program separated by a blank line")
	}
	regs := chronoNumRe.FindAllString(parts[0], -1)
	if len(regs) != 3 {
		return chronoMachine{}, fmt.Errorf("expected 3 registers, got %d", len(regs))
	}
	var m chronoMachine
	var err error
	if m.a, err = atoi(regs[0]); err != nil {
		return m, err
	}
	if m.b, err = atoi(regs[1]); err != nil {
		return m, err
	}
	if m.c, err = atoi(regs[2]); err != nil {
		return m, err
	}
	for _, s := range chronoNumRe.FindAllString(parts[1], -1) {
		op, err := atoi(s)
		if err != nil {
			return m, err
		}
		m.program = append(m.program, op)
	}
	return m, nil
}

// run executes the 3-bit program and returns its comma-joined output.
func (m chronoMachine) run() []int {
	a, b, c := m.a, m.b, m.c

	combo := func(operand int) int {
		switch operand {
		case 4:
			return a
		case 5:
			return b
		case 6:
			return c
		default:
			return operand
		}
	}

	var out []int
	for ip := 0; ip+1 < len(m.program); {
		opcode, operand := m.program[ip], m.program[ip+1]
		ip += 2
		switch opcode {
		case 0: // adv
			a >>= combo(operand)
		case 1: // bxl
			b ^= operand
		case 2: // bst
			b = combo(operand) & 7
		case 3: // jnz
			if a != 0 {
				ip = operand
			}
		case 4: // bxc
			b ^= c
		case 5: // out
			out = append(out, combo(operand)&7)
		case 6: // bdv
			b = a >> combo(operand)
		case 7: // cdv
			c = a >> combo(operand)
		}
	}
	return out
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func day17Part1(input string) (string, error) {
	m, err := parseChronoMachine(input)
	if err != nil {
		return "", err
	}
	return joinInts(m.run()), nil
}

// day17Part2 finds the lowest register A that makes the program output a
// copy of itself. The program consumes A three bits per loop iteration, so
// candidates are built octal digit by octal digit from the last output
// backwards, keeping every digit that reproduces the program's tail.
func day17Part2(input string) (string, error) {
	m, err := parseChronoMachine(input)
	if err != nil {
		return "", err
	}

	candidates := []int{0}
	for i := len(m.program) - 1; i >= 0; i-- {
		var next []int
		want := m.program[i:]
		for _, base := range candidates {
			for digit := 0; digit < 8; digit++ {
				a := base<<3 | digit
				trial := m
				trial.a = a
				out := trial.run()
				if len(out) == len(want) && joinInts(out) == joinInts(want) {
					next = append(next, a)
				}
			}
		}
		if len(next) == 0 {
			return "", fmt.Errorf("no quine value for register A")
		}
		candidates = next
	}

	best := candidates[0]
	for _, a := range candidates[1:] {
		if a < best {
			best = a
		}
	}
	return itoa(best), nil
}
