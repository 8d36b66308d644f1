package burrow

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// HallLen is the number of spaces in the hallway.
	HallLen = 11
	// NumRooms is the number of side rooms.
	NumRooms = 4
	// MaxDepth is the deepest room supported (the unfolded burrow).
	MaxDepth = 4
)

// ErrMalformedInput is wrapped by every error describing a burrow that
// cannot be built from its input.
var ErrMalformedInput = errors.New("burrow: malformed input")

// doorways[r] is the hallway column right outside room r.
var doorways = [NumRooms]int{2, 4, 6, 8}

func isDoorway(col int) bool {
	for _, d := range doorways {
		if col == d {
			return true
		}
	}
	return false
}

// A State is the position of every amphipod in a burrow.
//
// States are values: they are never modified in place, and two states are
// equal (with ==, or as map keys) exactly when every space matches.
// Slot 0 of a room is the one next to the hallway.
type State struct {
	hall  [HallLen]Amphipod
	rooms [NumRooms][MaxDepth]Amphipod
	depth uint8
}

// New builds the starting burrow from the amphipods listed row by row,
// top row first, with the hallway empty. It accepts two rows (eight
// amphipods) or four rows (sixteen).
func New(labels []Amphipod) (State, error) {
	var s State
	switch len(labels) {
	case 2 * NumRooms:
		s.depth = 2
	case MaxDepth * NumRooms:
		s.depth = MaxDepth
	default:
		return State{}, fmt.Errorf("%w: got %d amphipods; want %d or %d",
			ErrMalformedInput, len(labels), 2*NumRooms, MaxDepth*NumRooms)
	}
	for i, a := range labels {
		if !a.Valid() {
			return State{}, fmt.Errorf("%w: position %d holds %s", ErrMalformedInput, i, a)
		}
		s.rooms[i%NumRooms][i/NumRooms] = a
	}
	if err := s.validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// validate checks the invariants every reachable burrow satisfies.
func (s State) validate() error {
	var counts [NumRooms]int
	for col, a := range s.hall {
		if a == Empty {
			continue
		}
		if isDoorway(col) {
			return fmt.Errorf("%w: %s stopped in the doorway at hallway column %d",
				ErrMalformedInput, a, col)
		}
		counts[a.Room()]++
	}
	for r := range NumRooms {
		occupied := false
		for i := range int(s.depth) {
			a := s.rooms[r][i]
			if a == Empty {
				if occupied {
					return fmt.Errorf("%w: room %d has an empty space below an amphipod",
						ErrMalformedInput, r)
				}
				continue
			}
			occupied = true
			counts[a.Room()]++
		}
	}
	for r, n := range counts {
		if n != int(s.depth) {
			return fmt.Errorf("%w: found %d of %s; want %d",
				ErrMalformedInput, n, Amber+Amphipod(r), s.depth)
		}
	}
	return nil
}

// Target returns the sorted burrow with rooms of the given depth.
// It panics if depth is not between 1 and MaxDepth.
func Target(depth int) State {
	if depth < 1 || depth > MaxDepth {
		panic(fmt.Sprintf("burrow: bad depth %d", depth))
	}
	s := State{depth: uint8(depth)}
	for r := range NumRooms {
		for i := range depth {
			s.rooms[r][i] = Amber + Amphipod(r)
		}
	}
	return s
}

// IsTarget reports whether every amphipod is in its own room.
func (s State) IsTarget() bool {
	if s.depth == 0 {
		return false
	}
	return s == Target(int(s.depth))
}

// Depth is the number of spaces in each room.
func (s State) Depth() int { return int(s.depth) }

// Hall returns the content of hallway column col.
func (s State) Hall(col int) Amphipod { return s.hall[col] }

// Room returns the content of slot i of room r.
func (s State) Room(r, i int) Amphipod { return s.rooms[r][i] }

// Unfold returns the starting burrow with the two hidden rows
//
//	#D#C#B#A#
//	#D#B#A#C#
//
// inserted between the first and second rows of every room.
func (s State) Unfold() (State, error) {
	if s.depth != 2 {
		return State{}, fmt.Errorf("burrow: cannot unfold a burrow of depth %d", s.depth)
	}
	if s.hall != ([HallLen]Amphipod{}) {
		return State{}, errors.New("burrow: cannot unfold a burrow with amphipods in the hallway")
	}
	hidden := [2][NumRooms]Amphipod{
		{Desert, Copper, Bronze, Amber},
		{Desert, Bronze, Amber, Copper},
	}
	t := State{depth: MaxDepth}
	for r := range NumRooms {
		t.rooms[r] = [MaxDepth]Amphipod{s.rooms[r][0], hidden[0][r], hidden[1][r], s.rooms[r][1]}
	}
	return t, nil
}

// String draws the burrow the way the puzzle input does.
func (s State) String() string {
	var b strings.Builder
	b.WriteString("#############\n#")
	for _, a := range s.hall {
		b.WriteString(a.String())
	}
	b.WriteString("#\n")
	for i := range int(s.depth) {
		if i == 0 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for r := range NumRooms {
			b.WriteString(s.rooms[r][i].String())
			b.WriteByte('#')
		}
		if i == 0 {
			b.WriteString("##")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  #########\n")
	return b.String()
}

// An edit replaces the content of one space.
type edit struct {
	room int // -1 for the hallway
	pos  int
	a    Amphipod
}

func hallEdit(col int, a Amphipod) edit  { return edit{room: -1, pos: col, a: a} }
func roomEdit(r, i int, a Amphipod) edit { return edit{room: r, pos: i, a: a} }

// with returns a copy of s with the edits applied. s is unchanged.
func (s State) with(edits ...edit) State {
	for _, e := range edits {
		if e.room < 0 {
			s.hall[e.pos] = e.a
		} else {
			s.rooms[e.room][e.pos] = e.a
		}
	}
	return s
}
