// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"fmt"
	"sort"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Puzzle{
		Day:   1,
		Title: "Historian Hysteria",
		Part1: day01Part1,
		Part2: day01Part2,
	})
}

// parseLocationLists reads the two side-by-side location ID columns.
func parseLocationLists(input string) (left, right []int, err error) {
	for _, line := range lines(input) {
		nums, err := intFields(line)
		if err != nil {
			return nil, nil, err
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("expected two location IDs per line, got %q", line)
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// day01Part1 pairs the sorted lists and sums the pairwise distances.
func day01Part1(input string) (string, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return "", err
	}
	sort.Ints(left)
	sort.Ints(right)

	total := 0
	for i := range left {
		total += abs(left[i] - right[i])
	}
	return itoa(total), nil
}

// day01Part2 scores each left ID by how often it appears on the right.
func day01Part2(input string) (string, error) {
	left, right, err := parseLocationLists(input)
	if err != nil {
		return "", err
	}
	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n]++
	}

	similarity := 0
	for _, n := range left {
		similarity += n * counts[n]
	}
	return itoa(similarity), nil
}
