package db

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapDBError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: results.id"), ErrDuplicate},
		{"postgres code", errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"), ErrDuplicate},
		{"mysql code", errors.New("Error 1062: Duplicate entry '1' for key 'PRIMARY'"), ErrDuplicate},
		{"unrelated", errors.New("connection refused"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapDBError(tc.in)
			if tc.want == ErrDuplicate {
				if !errors.Is(got, ErrDuplicate) {
					t.Fatalf("expected ErrDuplicate, got %v", got)
				}
				return
			}
			if tc.in == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			// Unrelated errors pass through unchanged.
			if got == nil || errors.Is(got, ErrDuplicate) {
				t.Fatalf("expected passthrough error, got %v", got)
			}
		})
	}
}

func TestMapDBError_Wrapped(t *testing.T) {
	err := fmt.Errorf("save: %w", errors.New("UNIQUE constraint failed: results.id"))
	if !errors.Is(MapDBError(err), ErrDuplicate) {
		t.Fatalf("expected wrapped unique violation to map to ErrDuplicate")
	}
}
