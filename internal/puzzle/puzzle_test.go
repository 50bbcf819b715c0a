package puzzle

import (
	"errors"
	"testing"
)

func TestRegister_And_Get(t *testing.T) {
	// Use a day number outside the calendar to avoid clashing with the
	// real solvers registered elsewhere.
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for out-of-range day")
		}
	}()
	Register(Puzzle{Day: 26, Title: "Nope", Part1: func(string) (string, error) { return "", nil }})
}

func TestRegister_NilPart1_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for nil Part1")
		}
	}()
	Register(Puzzle{Day: 12, Title: "Broken"})
}

func TestGet_UnknownDay(t *testing.T) {
	if _, err := Get(0); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestSolve_InvalidPart(t *testing.T) {
	if _, err := Solve(1, 3, ""); err == nil {
		t.Fatalf("expected error for part 3")
	}
}

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a\r\nb\r\n", "a\nb"},
		{"a\nb\n\n", "a\nb"},
		{"a \t\n", "a"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeInput(tc.in); got != tc.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInputFileName(t *testing.T) {
	if got := InputFileName(3); got != "day03.txt" {
		t.Errorf("InputFileName(3) = %q, want day03.txt", got)
	}
	if got := InputFileName(25); got != "day25.txt" {
		t.Errorf("InputFileName(25) = %q, want day25.txt", got)
	}
}
