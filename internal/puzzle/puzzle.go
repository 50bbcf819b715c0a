// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

// Package puzzle holds the registry of daily puzzle solvers. Each day
// registers itself from an init function in the days subpackage; the CLI and
// TUI only ever talk to the registry.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// SolveFunc computes the answer for one part of a day's puzzle from the raw
// input text. Answers are normalized to strings; numeric answers are
// formatted in base 10.
type SolveFunc func(input string) (string, error)

// Puzzle bundles the solvers for one day.
type Puzzle struct {
	Day   int
	Title string
	Part1 SolveFunc
	Part2 SolveFunc // nil when the day has no second part (day 25)
}

// ErrUnknownDay is returned when no puzzle is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// ErrNoPartTwo is returned when part 2 is requested for a day without one.
var ErrNoPartTwo = errors.New("no part two")

var (
	mu       sync.RWMutex
	registry = map[int]Puzzle{}
)

// Register adds a day's solvers to the registry. Registering the same day
// twice is a programming error and panics.
func Register(p Puzzle) {
	mu.Lock()
	defer mu.Unlock()
	if p.Day < 1 || p.Day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range", p.Day))
	}
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", p.Day))
	}
	if p.Part1 == nil {
		panic(fmt.Sprintf("puzzle: day %d has no part 1", p.Day))
	}
	registry[p.Day] = p
}

// Get returns the puzzle registered for a day.
func Get(day int) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return p, nil
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Solve runs one part of a day's puzzle against the given input text.
func Solve(day, part int, input string) (string, error) {
	p, err := Get(day)
	if err != nil {
		return "", err
	}
	switch part {
	case 1:
		return p.Part1(input)
	case 2:
		if p.Part2 == nil {
			return "", fmt.Errorf("day %d: %w", day, ErrNoPartTwo)
		}
		return p.Part2(input)
	default:
		return "", fmt.Errorf("part must be 1 or 2, got %d", part)
	}
}
