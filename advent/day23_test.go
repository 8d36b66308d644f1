package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/amphipod/burrow"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

func TestSolveInput(t *testing.T) {
	r, err := solveInput(strings.NewReader(example), false, config{})
	if err != nil {
		t.Fatal(err)
	}
	if want := 12521; r.cost != want {
		t.Errorf("got %d; want %d", r.cost, want)
	}
	if r.stats.Expanded == 0 {
		t.Error("no states expanded")
	}
}

func TestSolveInputErrors(t *testing.T) {
	_, err := solveInput(strings.NewReader("BCBDADC"), false, config{})
	if !errors.Is(err, burrow.ErrMalformedInput) {
		t.Errorf("got err %v; want ErrMalformedInput", err)
	}
	_, err = solveInput(strings.NewReader(example), false, config{maxDepth: 1})
	if !errors.Is(err, burrow.ErrTooDeep) {
		t.Errorf("got err %v; want ErrTooDeep", err)
	}
	// Only the starting diagram can be unfolded.
	moved := strings.Replace(example, "#...........#\n###B", "#B..........#\n###.", 1)
	_, err = solveInput(strings.NewReader(moved), true, config{})
	if err == nil {
		t.Error("unfolding a moved burrow: got nil error")
	}
}

func TestSolvePath(t *testing.T) {
	name := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(name, []byte(example), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := solvePath(name, false, config{})
	if err != nil {
		t.Fatal(err)
	}
	if want := 12521; r.cost != want {
		t.Errorf("got %d; want %d", r.cost, want)
	}
	if _, err := solvePath(filepath.Join(t.TempDir(), "nope"), false, config{}); err == nil {
		t.Error("missing input: got nil error")
	}
}

func TestFormatEnergy(t *testing.T) {
	for _, tt := range []struct {
		n     int
		human bool
		want  string
	}{
		{12521, false, "12521"},
		{12521, true, "12,521"},
		{0, true, "0"},
	} {
		if got := formatEnergy(tt.n, tt.human); got != tt.want {
			t.Errorf("formatEnergy(%d, %t): got %q; want %q", tt.n, tt.human, got, tt.want)
		}
	}
}

func TestInputError(t *testing.T) {
	err := error(&inputError{path: "in.txt", err: burrow.ErrUnsolvable})
	if got, want := err.Error(), "in.txt: "+burrow.ErrUnsolvable.Error(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if !errors.Is(err, burrow.ErrUnsolvable) {
		t.Error("inputError does not unwrap")
	}
}
