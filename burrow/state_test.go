package burrow

import (
	"errors"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const example = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const exampleUnfolded = `#############
#...........#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########
`

func mustParse(t testing.TB, s string) State {
	t.Helper()
	state, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse(%q): %s", s, err)
	}
	return state
}

func checkState(t *testing.T, got, want State) {
	t.Helper()
	if got != want {
		t.Errorf("got\n%swant\n%sdiff: %v", got, want, pretty.Diff(got, want))
	}
}

func TestNew(t *testing.T) {
	got, err := New([]Amphipod{Bronze, Copper, Bronze, Desert, Amber, Desert, Copper, Amber})
	if err != nil {
		t.Fatal(err)
	}
	checkState(t, got, mustParse(t, example))
	if got.Depth() != 2 {
		t.Errorf("got depth %d; want 2", got.Depth())
	}
	if got.Room(0, 0) != Bronze || got.Room(0, 1) != Amber {
		t.Errorf("room 0 holds %s%s; want BA", got.Room(0, 0), got.Room(0, 1))
	}
	for col := range HallLen {
		if a := got.Hall(col); a != Empty {
			t.Errorf("hallway column %d holds %s", col, a)
		}
	}
}

func TestNewMalformed(t *testing.T) {
	A, B, C, D := Amber, Bronze, Copper, Desert
	for _, tt := range []struct {
		name   string
		labels []Amphipod
	}{
		{"empty", nil},
		{"short", []Amphipod{A, B, C, D, A, B, C}},
		{"long", []Amphipod{A, B, C, D, A, B, C, D, A}},
		{"empty space", []Amphipod{A, B, C, D, A, B, C, Empty}},
		{"bad label", []Amphipod{A, B, C, D, A, B, C, 9}},
		{"miscounted", []Amphipod{A, A, A, D, B, B, C, D}},
	} {
		_, err := New(tt.labels)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: got err %v; want ErrMalformedInput", tt.name, err)
		}
	}
}

func TestTarget(t *testing.T) {
	for _, depth := range []int{2, 4} {
		target := Target(depth)
		if !target.IsTarget() {
			t.Errorf("Target(%d) is not the target", depth)
		}
		if err := target.validate(); err != nil {
			t.Errorf("Target(%d): %s", depth, err)
		}
	}
	if mustParse(t, example).IsTarget() {
		t.Error("example is the target")
	}
	if (State{}).IsTarget() {
		t.Error("zero State is the target")
	}
	want := `#############
#...........#
###A#B#C#D###
  #A#B#C#D#
  #########
`
	if got := Target(2).String(); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{
		example,
		exampleUnfolded,
		`#############
#.A.....B..D#
###.#C#.#.###
  #A#D#C#B#
  #########
`,
	} {
		state := mustParse(t, s)
		if got := state.String(); got != s {
			t.Errorf("got\n%swant\n%s", got, s)
		}
	}
}

func TestWithCopies(t *testing.T) {
	s := mustParse(t, example)
	orig := s
	next := s.with(roomEdit(0, 0, Empty), hallEdit(0, Bronze))
	checkState(t, s, orig)
	if next.Hall(0) != Bronze || next.Room(0, 0) != Empty {
		t.Errorf("edits not applied:\n%s", next)
	}
}

func TestUnfold(t *testing.T) {
	got, err := mustParse(t, example).Unfold()
	if err != nil {
		t.Fatal(err)
	}
	checkState(t, got, mustParse(t, exampleUnfolded))

	if _, err := got.Unfold(); err == nil {
		t.Error("unfolding an unfolded burrow: got nil error")
	}
	moved := mustParse(t, `#############
#B..........#
###.#C#B#D###
  #A#D#C#A#
  #########
`)
	if _, err := moved.Unfold(); err == nil {
		t.Error("unfolding with an occupied hallway: got nil error")
	}
}

func TestAmphipod(t *testing.T) {
	for _, tt := range []struct {
		c      byte
		a      Amphipod
		energy int
		room   int
	}{
		{'A', Amber, 1, 0},
		{'B', Bronze, 10, 1},
		{'C', Copper, 100, 2},
		{'D', Desert, 1000, 3},
	} {
		a, err := ParseAmphipod(tt.c)
		if err != nil {
			t.Fatal(err)
		}
		if a != tt.a {
			t.Errorf("ParseAmphipod(%q): got %v; want %v", tt.c, a, tt.a)
		}
		if got := a.Energy(); got != tt.energy {
			t.Errorf("%s.Energy(): got %d; want %d", a, got, tt.energy)
		}
		if got := a.Room(); got != tt.room {
			t.Errorf("%s.Room(): got %d; want %d", a, got, tt.room)
		}
		if got := a.String(); got != string(tt.c) {
			t.Errorf("String: got %q; want %q", got, tt.c)
		}
	}
	if _, err := ParseAmphipod('E'); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("ParseAmphipod('E'): got err %v; want ErrMalformedInput", err)
	}
	if Empty.Valid() || Empty.Room() != -1 || Empty.Energy() != 0 {
		t.Error("Empty looks like an amphipod")
	}
}
