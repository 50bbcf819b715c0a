// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   24,
		Title: "Crossed Wires",
		Part1: day24Part1,
		Part2: day24Part2,
	})
}

// gate is one boolean operation feeding an output wire.
type gate struct {
	left, right string
	op          string
	out         string
}

var wireValueRe = regexp.MustCompile(`^(\w+): ([01])$`)
var gateRe = regexp.MustCompile(`^(\w+) (AND|OR|XOR) (\w+) -> (\w+)$`)

func parseWireSystem(input string) (map[string]int, []gate, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("expected wire values and gates separated by a blank line")
	}

	values := map[string]int{}
	for _, line := range lines(parts[0]) {
		m := wireValueRe.FindStringSubmatch(line)
		if m == nil {
			return nil, nil, fmt.Errorf("bad wire value %q", line)
		}
		v := 0
		if m[2] == "1" {
			v = 1
		}
		values[m[1]] = v
	}

	var gates []gate
	for _, line := range lines(parts[1]) {
		m := gateRe.FindStringSubmatch(line)
		if m == nil {
			return nil, nil, fmt.Errorf("bad gate %q", line)
		}
		gates = append(gates, gate{left: m[1], op: m[2], right: m[3], out: m[4]})
	}
	return values, gates, nil
}

func (g gate) eval(a, b int) int {
	switch g.op {
	case "AND":
		return a & b
	case "OR":
		return a | b
	default: // XOR
		return a ^ b
	}
}

// day24Part1 settles the gate network and reads the z wires as a binary
// number, z00 being the least significant bit.
func day24Part1(input string) (string, error) {
	values, gates, err := parseWireSystem(input)
	if err != nil {
		return "", err
	}

	pending := gates
	for len(pending) > 0 {
		var rest []gate
		progress := false
		for _, g := range pending {
			a, aok := values[g.left]
			b, bok := values[g.right]
			if aok && bok {
				values[g.out] = g.eval(a, b)
				progress = true
			} else {
				rest = append(rest, g)
			}
		}
		if !progress {
			return "", fmt.Errorf("gate network does not settle (%d gates stuck)", len(rest))
		}
		pending = rest
	}

	result := 0
	for wire, v := range values {
		if v == 1 && strings.HasPrefix(wire, "z") {
			bit, err := atoi(wire[1:])
			if err != nil {
				return "", err
			}
			result |= 1 << bit
		}
	}
	return itoa(result), nil
}

// day24Part2 assumes the network should be a ripple-carry adder and flags
// the gate outputs that violate its structure:
//   - a z output (except the topmost bit) must come from a XOR;
//   - a XOR of two non-input wires must feed a z output;
//   - a XOR of x/y inputs (beyond bit 0) must feed another XOR;
//   - an AND (except on bit 0) must feed an OR.
//
// The swapped wires are exactly the violating outputs, joined sorted.
func day24Part2(input string) (string, error) {
	_, gates, err := parseWireSystem(input)
	if err != nil {
		return "", err
	}

	isInput := func(w string) bool {
		return strings.HasPrefix(w, "x") || strings.HasPrefix(w, "y")
	}
	isFirstBit := func(g gate) bool {
		return g.left == "x00" || g.right == "x00"
	}

	topZ := ""
	for _, g := range gates {
		if strings.HasPrefix(g.out, "z") && g.out > topZ {
			topZ = g.out
		}
	}

	// feeds[op] holds every wire consumed by a gate with that operator.
	feeds := map[string]map[string]bool{}
	for _, g := range gates {
		if feeds[g.op] == nil {
			feeds[g.op] = map[string]bool{}
		}
		feeds[g.op][g.left] = true
		feeds[g.op][g.right] = true
	}

	bad := map[string]bool{}
	for _, g := range gates {
		switch {
		case strings.HasPrefix(g.out, "z") && g.out != topZ && g.op != "XOR":
			bad[g.out] = true
		case g.op == "XOR" && !strings.HasPrefix(g.out, "z") && !isInput(g.left) && !isInput(g.right):
			bad[g.out] = true
		case g.op == "XOR" && isInput(g.left) && isInput(g.right) && !isFirstBit(g):
			if !feeds["XOR"][g.out] {
				bad[g.out] = true
			}
		case g.op == "AND" && !isFirstBit(g):
			if !feeds["OR"][g.out] {
				bad[g.out] = true
			}
		}
	}

	wires := make([]string, 0, len(bad))
	for w := range bad {
		wires = append(wires, w)
	}
	sort.Strings(wires)
	return strings.Join(wires, ","), nil
}
