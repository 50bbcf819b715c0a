// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   5,
		Title: "Print Queue",
		Part1: day05Part1,
		Part2: day05Part2,
	})
}

// pageOrdering maps X -> set of pages that must come after X.
type pageOrdering map[int]map[int]bool

func parsePrintQueue(input string) (pageOrdering, [][]int, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("expected rules and updates separated by a blank line")
	}

	after := pageOrdering{}
	for _, rule := range strings.Fields(parts[0]) {
		xy := strings.SplitN(rule, "|", 2)
		if len(xy) != 2 {
			return nil, nil, fmt.Errorf("bad rule %q", rule)
		}
		x, err := atoi(xy[0])
		if err != nil {
			return nil, nil, err
		}
		y, err := atoi(xy[1])
		if err != nil {
			return nil, nil, err
		}
		if after[x] == nil {
			after[x] = map[int]bool{}
		}
		after[x][y] = true
	}

	var updates [][]int
	for _, line := range lines(parts[1]) {
		var pages []int
		for _, f := range strings.Split(line, ",") {
			p, err := atoi(f)
			if err != nil {
				return nil, nil, err
			}
			pages = append(pages, p)
		}
		updates = append(updates, pages)
	}
	return after, updates, nil
}

// inOrder reports whether no later page is required to precede an earlier one.
func (o pageOrdering) inOrder(pages []int) bool {
	for i, p := range pages {
		for _, q := range pages[i+1:] {
			if o[q][p] {
				return false
			}
		}
	}
	return true
}

func day05Part1(input string) (string, error) {
	ordering, updates, err := parsePrintQueue(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, pages := range updates {
		if ordering.inOrder(pages) {
			total += pages[len(pages)/2]
		}
	}
	return itoa(total), nil
}

// day05Part2 re-sorts the incorrectly ordered updates by the rules and sums
// their middle pages.
func day05Part2(input string) (string, error) {
	ordering, updates, err := parsePrintQueue(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, pages := range updates {
		if ordering.inOrder(pages) {
			continue
		}
		sorted := append([]int(nil), pages...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return ordering[sorted[i]][sorted[j]]
		})
		total += sorted[len(sorted)/2]
	}
	return itoa(total), nil
}
