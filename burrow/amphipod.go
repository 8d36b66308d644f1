// Package burrow finds the least energy needed to sort the amphipods in a
// burrow: a hallway of 11 spaces above four side rooms, where each room
// should end up holding only one kind of amphipod.
package burrow

import "fmt"

// An Amphipod is the content of a single burrow space: either Empty or one
// of the four kinds of amphipod.
type Amphipod uint8

const (
	Empty Amphipod = iota
	Amber
	Bronze
	Copper
	Desert
)

var energy = [...]int{
	Amber:  1,
	Bronze: 10,
	Copper: 100,
	Desert: 1000,
}

// ParseAmphipod returns the amphipod labeled by c (one of A, B, C, D).
func ParseAmphipod(c byte) (Amphipod, error) {
	if c < 'A' || c > 'D' {
		return Empty, fmt.Errorf("%w: bad amphipod %q", ErrMalformedInput, c)
	}
	return Amber + Amphipod(c-'A'), nil
}

// Valid reports whether a is one of the four kinds of amphipod.
func (a Amphipod) Valid() bool { return a >= Amber && a <= Desert }

// Energy is the energy a uses to move a single step.
func (a Amphipod) Energy() int {
	if !a.Valid() {
		return 0
	}
	return energy[a]
}

// Room is the index of the room a belongs in, or -1 if a is not valid.
func (a Amphipod) Room() int {
	if !a.Valid() {
		return -1
	}
	return int(a - Amber)
}

func (a Amphipod) String() string {
	switch {
	case a == Empty:
		return "."
	case a.Valid():
		return string("ABCD"[a-Amber])
	default:
		return fmt.Sprintf("Amphipod(%d)", uint8(a))
	}
}
