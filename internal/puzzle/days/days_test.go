package days

import (
	"fmt"
	"testing"

	"github.com/sergiocalde94/advent-of-code-2024/internal/puzzle"
)

// TestExamples runs every registered solver against the published example
// inputs and checks the answers.
func TestExamples(t *testing.T) {
	for _, c := range exampleCases {
		c := c
		t.Run(fmt.Sprintf("day%02d_part%d_%s", c.Day, c.Part, c.File), func(t *testing.T) {
			input, err := ExampleInput(c.File)
			if err != nil {
				t.Fatalf("reading %s: %v", c.File, err)
			}
			var got string
			if c.Solve != nil {
				got, err = c.Solve(input)
			} else {
				got, err = puzzle.Solve(c.Day, c.Part, input)
			}
			if err != nil {
				t.Fatalf("solver error: %v", err)
			}
			if got != c.Expected {
				t.Errorf("expected %s, got %s", c.Expected, got)
			}
		})
	}
}

func TestVerifyExamples_Filter(t *testing.T) {
	cases := VerifyExamples(map[int]bool{3: true})
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases for day 3, got %d", len(cases))
	}
	for _, c := range cases {
		if c.Day != 3 {
			t.Errorf("filter leaked day %d", c.Day)
		}
		if !c.Passed {
			t.Errorf("day 3 part %d failed: expected %s got %s (err %v)", c.Part, c.Expected, c.Actual, c.Err)
		}
	}
}

func TestVerifyExamples_All(t *testing.T) {
	cases := VerifyExamples(nil)
	if len(cases) != len(exampleCases) {
		t.Fatalf("expected %d cases, got %d", len(exampleCases), len(cases))
	}
	for _, c := range cases {
		if !c.Passed {
			t.Errorf("day %d part %d (%s): expected %s got %s (err %v)",
				c.Day, c.Part, c.File, c.Expected, c.Actual, c.Err)
		}
	}
}

func TestExampleInput_Missing(t *testing.T) {
	if _, err := ExampleInput("day99_example.txt"); err == nil {
		t.Fatalf("expected error for missing fixture")
	}
}

func TestAllDaysRegistered(t *testing.T) {
	days := puzzle.Days()
	if len(days) != 25 {
		t.Fatalf("expected 25 registered days, got %d", len(days))
	}
	for i, d := range days {
		if d != i+1 {
			t.Fatalf("missing day %d in registry", i+1)
		}
	}
	p, err := puzzle.Get(25)
	if err != nil {
		t.Fatalf("Get(25) failed: %v", err)
	}
	if p.Part2 != nil {
		t.Errorf("day 25 should have no part two")
	}
}

func TestBlinkStones_ShortRun(t *testing.T) {
	got, err := blinkStones("125 17", 6)
	if err != nil {
		t.Fatalf("blinkStones failed: %v", err)
	}
	if got != "22" {
		t.Errorf("expected 22 stones after 6 blinks, got %s", got)
	}
}

func TestShortestEscape_Unreachable(t *testing.T) {
	// A wall across the whole second row leaves no path.
	corrupted := map[point]bool{}
	for x := 0; x <= 2; x++ {
		corrupted[point{x, 1}] = true
	}
	if d := shortestEscape(corrupted, 3); d != -1 {
		t.Errorf("expected -1 for blocked grid, got %d", d)
	}
}

func TestWideWarehouse_HorizontalPush(t *testing.T) {
	// One box pushed right by one cell in the widened layout:
	// ##@.[]..## becomes ##..@[].## after two right moves.
	input := "#####\n#@O.#\n#####\n\n>>"
	got, err := day15Part2(input)
	if err != nil {
		t.Fatalf("day15Part2 failed: %v", err)
	}
	if got != "105" {
		t.Errorf("expected GPS sum 105, got %s", got)
	}
}

func TestWideWarehouse_HorizontalPushBlocked(t *testing.T) {
	// No gap behind the box, so the second move cannot push it into the wall.
	input := "####\n#@O#\n####\n\n>>"
	got, err := day15Part2(input)
	if err != nil {
		t.Fatalf("day15Part2 failed: %v", err)
	}
	if got != "104" {
		t.Errorf("expected GPS sum 104, got %s", got)
	}
}
