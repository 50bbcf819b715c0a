// Copyright (c) 2024 sergiocalde94
// Advent of Code 2024 - puzzle solutions and runner
// This source code is licensed under the MIT license found in the LICENSE file.

package days

import (
	"embed"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

//go:embed examples/*.txt
var exampleFS embed.FS

// exampleCase pairs an embedded example input with its known answer.
// Solve overrides the registered solver for puzzles whose example uses
// different parameters than the real input (fewer blinks, smaller grid).
type exampleCase struct {
	Day      int
	Part     int
	File     string
	Expected string
	Solve    puzzle.SolveFunc
}

var exampleCases = []exampleCase{
	{Day: 1, Part: 1, File: "day01_example.txt", Expected: "11"},
	{Day: 1, Part: 2, File: "day01_example.txt", Expected: "31"},
	{Day: 2, Part: 1, File: "day02_example.txt", Expected: "2"},
	{Day: 2, Part: 2, File: "day02_example.txt", Expected: "4"},
	{Day: 3, Part: 1, File: "day03_example.txt", Expected: "161"},
	{Day: 3, Part: 2, File: "day03_example_2.txt", Expected: "48"},
	{Day: 4, Part: 1, File: "day04_example.txt", Expected: "18"},
	{Day: 4, Part: 2, File: "day04_example.txt", Expected: "9"},
	{Day: 5, Part: 1, File: "day05_example.txt", Expected: "143"},
	{Day: 5, Part: 2, File: "day05_example.txt", Expected: "123"},
	{Day: 6, Part: 1, File: "day06_example.txt", Expected: "41"},
	{Day: 6, Part: 2, File: "day06_example.txt", Expected: "6"},
	{Day: 7, Part: 1, File: "day07_example.txt", Expected: "3749"},
	{Day: 7, Part: 2, File: "day07_example.txt", Expected: "11387"},
	{Day: 8, Part: 1, File: "day08_example.txt", Expected: "14"},
	{Day: 8, Part: 2, File: "day08_example.txt", Expected: "34"},
	{Day: 9, Part: 1, File: "day09_example.txt", Expected: "1928"},
	{Day: 9, Part: 2, File: "day09_example.txt", Expected: "2858"},
	{Day: 10, Part: 1, File: "day10_example.txt", Expected: "36"},
	{Day: 10, Part: 2, File: "day10_example.txt", Expected: "81"},
	{Day: 11, Part: 1, File: "day11_example.txt", Expected: "55312"},
	{Day: 12, Part: 1, File: "day12_example.txt", Expected: "140"},
	{Day: 12, Part: 1, File: "day12_example_2.txt", Expected: "772"},
	{Day: 12, Part: 1, File: "day12_example_3.txt", Expected: "1930"},
	{Day: 12, Part: 2, File: "day12_example.txt", Expected: "80"},
	{Day: 12, Part: 2, File: "day12_example_4.txt", Expected: "236"},
	{Day: 12, Part: 2, File: "day12_example_5.txt", Expected: "368"},
	{Day: 12, Part: 2, File: "day12_example_3.txt", Expected: "1206"},
	{Day: 13, Part: 1, File: "day13_example.txt", Expected: "480"},
	{Day: 13, Part: 2, File: "day13_example.txt", Expected: "875318608908"},
	{Day: 14, Part: 1, File: "day14_example.txt", Expected: "12"},
	{Day: 15, Part: 1, File: "day15_example.txt", Expected: "2028"},
	{Day: 15, Part: 1, File: "day15_example_2.txt", Expected: "10092"},
	{Day: 15, Part: 2, File: "day15_example_2.txt", Expected: "9021"},
	{Day: 16, Part: 1, File: "day16_example.txt", Expected: "7036"},
	{Day: 16, Part: 1, File: "day16_example_2.txt", Expected: "11048"},
	{Day: 16, Part: 2, File: "day16_example.txt", Expected: "45"},
	{Day: 16, Part: 2, File: "day16_example_2.txt", Expected: "64"},
	{Day: 17, Part: 1, File: "day17_example.txt", Expected: "4,6,3,5,6,3,5,2,1,0"},
	{Day: 17, Part: 2, File: "day17_example_2.txt", Expected: "117440"},
	{Day: 18, Part: 1, File: "day18_example.txt", Expected: "22",
		Solve: func(input string) (string, error) { return day18Part1(input, 12) }},
	{Day: 18, Part: 2, File: "day18_example.txt", Expected: "6,1"},
	{Day: 19, Part: 1, File: "day19_example.txt", Expected: "6"},
	{Day: 19, Part: 2, File: "day19_example.txt", Expected: "16"},
	{Day: 20, Part: 1, File: "day20_example.txt", Expected: "44",
		Solve: func(input string) (string, error) { return countCheats(input, 2, 1) }},
	{Day: 20, Part: 2, File: "day20_example.txt", Expected: "285",
		Solve: func(input string) (string, error) { return countCheats(input, 20, 50) }},
	{Day: 21, Part: 1, File: "day21_example.txt", Expected: "126384"},
	{Day: 22, Part: 1, File: "day22_example.txt", Expected: "37327623"},
	{Day: 22, Part: 2, File: "day22_example_2.txt", Expected: "23"},
	{Day: 23, Part: 1, File: "day23_example.txt", Expected: "7"},
	{Day: 23, Part: 2, File: "day23_example.txt", Expected: "co,de,ka,ta"},
	{Day: 24, Part: 1, File: "day24_example.txt", Expected: "4"},
	{Day: 24, Part: 1, File: "day24_example_2.txt", Expected: "2024"},
	{Day: 25, Part: 1, File: "day25_example.txt", Expected: "3"},
}

// ExampleInput returns the embedded example input for a fixture file.
func ExampleInput(file string) (string, error) {
	b, err := exampleFS.ReadFile("examples/" + file)
	if err != nil {
		return "", err
	}
	return puzzle.NormalizeInput(string(b)), nil
}

// VerifyCase is one day/part check against a known example answer.
type VerifyCase struct {
	Day      int
	Part     int
	File     string
	Expected string
	Actual   string
	Passed   bool
	Err      error
}

// VerifyExamples runs every example case for the given days (all days when
// the filter is empty) and reports per-case results.
func VerifyExamples(dayFilter map[int]bool) []VerifyCase {
	var out []VerifyCase
	for _, c := range exampleCases {
		if len(dayFilter) > 0 && !dayFilter[c.Day] {
			continue
		}
		vc := VerifyCase{Day: c.Day, Part: c.Part, File: c.File, Expected: c.Expected}
		input, err := ExampleInput(c.File)
		if err != nil {
			vc.Err = err
			out = append(out, vc)
			continue
		}
		if c.Solve != nil {
			vc.Actual, vc.Err = c.Solve(input)
		} else {
			vc.Actual, vc.Err = puzzle.Solve(c.Day, c.Part, input)
		}
		vc.Passed = vc.Err == nil && vc.Actual == c.Expected
		out = append(out, vc)
	}
	return out
}
